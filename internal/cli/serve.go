// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/specialistvlad/jsdmbrs/internal/app"
	"github.com/spf13/cobra"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve model generation over HTTP",
		Long: `Start an HTTP server exposing POST /v1/generate, GET /v1/grammar and
GET /health. The server stops gracefully on SIGINT or SIGTERM.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := opts.app
			if cmd.Flags().Changed("port") {
				opts.cfg.Server.Port = port
				if err := opts.cfg.Validate(); err != nil {
					return usageError(err)
				}
				a = app.NewApp(opts.errW, opts.cfg)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.Serve(ctx, nil)
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Listen port. Overrides server.port.")
	return cmd
}
