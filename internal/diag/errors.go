// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package diag

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
)

// ScopedToken is a search token that only matches inside one class body.
type ScopedToken struct {
	Class string
	Token string
}

type searchKind int

const (
	searchNone searchKind = iota
	searchSingle
	searchList
	searchScoped
)

// SearchValue names the source substrings an editor should highlight for an
// error: one token, several tokens, or tokens scoped to a class. Values own
// their data; the constructors copy their arguments.
type SearchValue struct {
	kind   searchKind
	tokens []string
	scoped []ScopedToken
}

// Token returns a search value with a single token.
func Token(s string) SearchValue {
	return SearchValue{kind: searchSingle, tokens: []string{s}}
}

// Tokens returns a search value with a list of tokens.
func Tokens(s ...string) SearchValue {
	return SearchValue{kind: searchList, tokens: append([]string(nil), s...)}
}

// Scoped returns a search value whose tokens are bound to classes.
func Scoped(entries ...ScopedToken) SearchValue {
	return SearchValue{kind: searchScoped, scoped: append([]ScopedToken(nil), entries...)}
}

// IsZero reports whether the value carries no tokens.
func (v SearchValue) IsZero() bool {
	return v.kind == searchNone
}

// Entries flattens the value into scoped tokens. Unscoped tokens have an
// empty Class. The returned slice is a copy.
func (v SearchValue) Entries() []ScopedToken {
	switch v.kind {
	case searchSingle, searchList:
		out := make([]ScopedToken, len(v.tokens))
		for i, t := range v.tokens {
			out[i] = ScopedToken{Token: t}
		}
		return out
	case searchScoped:
		return append([]ScopedToken(nil), v.scoped...)
	}
	return nil
}

// String renders the value the way it appears in logs.
func (v SearchValue) String() string {
	var parts []string
	for _, e := range v.Entries() {
		if e.Class != "" {
			parts = append(parts, e.Class+":"+e.Token)
		} else {
			parts = append(parts, e.Token)
		}
	}
	return strings.Join(parts, ", ")
}

// MarshalJSON encodes a single token as a string, a list as an array of
// strings and scoped tokens as an array of {class: token} objects.
func (v SearchValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case searchSingle:
		return json.Marshal(v.tokens[0])
	case searchList:
		return json.Marshal(v.tokens)
	case searchScoped:
		out := make([]map[string]string, len(v.scoped))
		for i, e := range v.scoped {
			out[i] = map[string]string{e.Class: e.Token}
		}
		return json.Marshal(out)
	}
	return []byte("null"), nil
}

// SemanticError is raised when well-formed source violates a model rule.
type SemanticError struct {
	Message string
	Type    ErrType
	Subject hcl.Range
	Search  SearchValue
}

// Error implements the error interface.
func (e *SemanticError) Error() string {
	return fmt.Sprintf("at position (%d,%d): %s", e.Subject.Start.Line, e.Subject.Start.Column, e.Message)
}

// SyntaxError is raised when the source does not match the grammar. Near is
// the source text just before the failure and Found the offending token.
type SyntaxError struct {
	Message  string
	Subject  hcl.Range
	Expected string
	Near     string
	Found    string
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("at position (%d,%d): %s", e.Subject.Start.Line, e.Subject.Start.Column, e.Message)
}
