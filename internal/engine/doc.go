// Package engine is the entry point of a generation run. It parses JSD-MBRS
// source, runs the semantic pass and translates every failure into a
// diag.Response, so callers never inspect error types themselves.
//
// The Engine holds only immutable options and is safe for concurrent use;
// every run builds its own type catalog, parse tree and model.
package engine
