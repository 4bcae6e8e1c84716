// Package config loads the application configuration. Values are layered, in
// increasing priority: built-in defaults, an optional YAML file, and
// JSDMBRS_* environment variables. The merged result is validated before it
// is returned.
package config
