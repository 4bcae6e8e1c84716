// Package cli defines the jsdmbrs command tree on top of cobra. It loads the
// configuration once in the root command's persistent pre-run, builds the
// App shared by every subcommand and maps failures onto process exit codes.
package cli
