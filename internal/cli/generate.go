// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/specialistvlad/jsdmbrs/internal/export"
	"github.com/spf13/cobra"
)

type generateOptions struct {
	output string
	format string
}

func newGenerateCmd(opts *rootOptions) *cobra.Command {
	g := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate FILE",
		Short: "Export the enriched model of a file",
		Long: `Validate a model file and export the enriched model that backend
generators consume. The format defaults to export.format from the
configuration.`,
		Example: `  # Print the model as JSON
  jsdmbrs generate shop.jsdmbrs

  # Write the model as HCL
  jsdmbrs generate shop.jsdmbrs --format hcl -o shop.hcl`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return g.run(cmd, opts, args[0])
		},
	}

	names := make([]string, len(export.Formats))
	for i, f := range export.Formats {
		names[i] = string(f)
	}
	cmd.Flags().StringVarP(&g.output, "output", "o", "", "Output file. Defaults to stdout.")
	cmd.Flags().StringVarP(&g.format, "format", "f", "", "Export format: "+strings.Join(names, ", ")+".")
	return cmd
}

func (g *generateOptions) run(cmd *cobra.Command, opts *rootOptions, path string) error {
	name := opts.cfg.Export.Format
	if g.format != "" {
		name = g.format
	}
	format, err := export.ParseFormat(name)
	if err != nil {
		return usageError(err)
	}

	var out io.Writer = opts.outW
	if g.output != "" {
		f, err := os.Create(g.output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	return opts.app.Generate(cmd.Context(), path, format, out, opts.errW, opts.color)
}
