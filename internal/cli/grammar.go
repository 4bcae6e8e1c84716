// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package cli

import (
	"fmt"
	"io"

	"github.com/specialistvlad/jsdmbrs/internal/catalog"
	"github.com/specialistvlad/jsdmbrs/internal/syntax"
	"github.com/spf13/cobra"
)

func newGrammarCmd(opts *rootOptions) *cobra.Command {
	var types bool

	cmd := &cobra.Command{
		Use:   "grammar",
		Short: "Print the EBNF of the model language",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(_ *cobra.Command, _ []string) error {
			if types {
				return writeBuiltinTypes(opts.outW)
			}
			_, err := fmt.Fprintln(opts.outW, syntax.Grammar())
			return err
		},
	}
	cmd.Flags().BoolVarP(&types, "types", "t", false, "List the builtin type keywords instead.")
	return cmd
}

// writeBuiltinTypes prints one keyword per line with its type family and
// default value, in catalog order.
func writeBuiltinTypes(w io.Writer) error {
	builtins := catalog.Builtins()
	for _, kw := range catalog.Keywords() {
		pt := builtins[kw]
		if _, err := fmt.Fprintf(w, "%-11s %-17s %s\n", kw, pt.Kind, pt.DefaultValue); err != nil {
			return err
		}
	}
	return nil
}
