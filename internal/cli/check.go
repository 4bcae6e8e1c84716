// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check PATH...",
		Short: "Validate model files",
		Long: `Validate every .jsdmbrs file found at the given paths. Directories are
searched recursively. Diagnostics are written to stderr.`,
		Example: `  # Check a single file
  jsdmbrs check shop.jsdmbrs

  # Check every model under a directory
  jsdmbrs check ./models`,
		Args: usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.app.Check(cmd.Context(), args, opts.errW, opts.color); err != nil {
				return err
			}
			_, err := fmt.Fprintln(opts.outW, "OK")
			return err
		},
	}
}
