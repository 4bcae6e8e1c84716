// Package app wires configuration, logging and the engine together. It
// implements the check, generate and serve workflows independently of any
// entrypoint such as the CLI.
package app
