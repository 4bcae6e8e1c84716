// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/jsdmbrs/internal/app"
	"github.com/specialistvlad/jsdmbrs/internal/config"
	"github.com/spf13/cobra"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Exit codes.
const (
	ExitInvalidModel = 1
	ExitUsage        = 2
)

type rootOptions struct {
	configPath string
	logLevel   string
	logFormat  string
	color      bool

	outW io.Writer
	errW io.Writer

	cfg *config.Config
	app *app.App
}

// NewRootCmd creates the root command. Command output goes to outW; logs and
// diagnostics go to errW.
func NewRootCmd(outW, errW io.Writer) *cobra.Command {
	opts := &rootOptions{outW: outW, errW: errW}

	rootCmd := &cobra.Command{
		Use:   "jsdmbrs",
		Short: "Validate and export JSD-MBRS entity models",
		Long: `jsdmbrs parses JSD-MBRS entity model files, checks them against the
modeling rules and exports the enriched model used by backend generators.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: opts.load,
	}
	rootCmd.SetOut(outW)
	rootCmd.SetErr(errW)
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Path to a YAML configuration file.")
	flags.StringVar(&opts.logLevel, "log-level", "", "Logging level: debug, info, warn or error.")
	flags.StringVar(&opts.logFormat, "log-format", "", "Log output format: text or json.")
	flags.BoolVar(&opts.color, "color", false, "Colorize diagnostics.")

	rootCmd.AddCommand(
		newCheckCmd(opts),
		newGenerateCmd(opts),
		newServeCmd(opts),
		newGrammarCmd(opts),
	)
	return rootCmd
}

// load merges the configuration file, the environment and the global flags,
// then builds the App shared by every subcommand.
func (o *rootOptions) load(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return usageError(err)
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Log.Format = o.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return usageError(fmt.Errorf("invalid flags: %w", err))
	}

	o.cfg = cfg
	o.app = app.NewApp(o.errW, cfg)
	return nil
}

// Execute runs the command line and maps failures onto ExitError.
func Execute(ctx context.Context, args []string, outW, errW io.Writer) error {
	rootCmd := NewRootCmd(outW, errW)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return nil
	}

	var exitErr *ExitError
	switch {
	case errors.As(err, &exitErr):
		return exitErr
	case errors.Is(err, app.ErrInvalidModel):
		return &ExitError{Code: ExitInvalidModel, Message: err.Error()}
	case strings.HasPrefix(err.Error(), "unknown command"):
		return usageError(err)
	}
	return err
}

func usageError(err error) error {
	return &ExitError{Code: ExitUsage, Message: err.Error()}
}

// usageArgs wraps a positional argument validator so that its failures exit
// with the usage code.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return usageError(err)
		}
		return nil
	}
}
