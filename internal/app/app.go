// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/jsdmbrs/internal/config"
	"github.com/specialistvlad/jsdmbrs/internal/ctxlog"
	"github.com/specialistvlad/jsdmbrs/internal/diag"
	"github.com/specialistvlad/jsdmbrs/internal/engine"
	"github.com/specialistvlad/jsdmbrs/internal/export"
	"github.com/specialistvlad/jsdmbrs/internal/server"
)

// ErrInvalidModel is returned when at least one source file failed to
// generate. The diagnostics have already been written when it is returned.
var ErrInvalidModel = errors.New("invalid model")

// DiagnosticsWidth is the wrap width used when rendering diagnostics.
const DiagnosticsWidth = 100

// App encapsulates the application's dependencies and configuration.
type App struct {
	logger *slog.Logger
	config *config.Config
	engine *engine.Engine
}

// NewApp creates an App that logs to logW.
func NewApp(logW io.Writer, cfg *config.Config) *App {
	logger := newLogger(cfg.Log.Level, cfg.Log.Format, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		logger: logger,
		config: cfg,
		engine: engine.New(cfg.SemanticOptions()),
	}
}

// Logger returns the application's logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Engine returns the application's engine.
func (a *App) Engine() *engine.Engine {
	return a.engine
}

func (a *App) context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}

// Check generates every source file under paths and writes diagnostics for
// the ones that fail to diagW.
func (a *App) Check(ctx context.Context, paths []string, diagW io.Writer, color bool) error {
	ctx = a.context(ctx)
	a.logger.Debug("App.Check started.", "paths", paths)

	var checked, failed int
	for _, path := range paths {
		results, err := a.engine.GeneratePath(ctx, path)
		if err != nil {
			return err
		}
		for _, res := range results {
			checked++
			if !res.Response.Failed() {
				continue
			}
			failed++
			if err := writeDiagnostics(diagW, res, color); err != nil {
				return err
			}
		}
	}

	a.logger.Info("Check finished.", "files", checked, "failed", failed)
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d files failed", ErrInvalidModel, failed, checked)
	}
	return nil
}

// Generate builds the model in path and exports it to out in format f.
func (a *App) Generate(ctx context.Context, path string, f export.Format, out, diagW io.Writer, color bool) error {
	ctx = a.context(ctx)

	res, err := a.engine.GenerateFile(ctx, path)
	if err != nil {
		return err
	}
	if res.Response.Failed() {
		if err := writeDiagnostics(diagW, res, color); err != nil {
			return err
		}
		return fmt.Errorf("%w: %s", ErrInvalidModel, res.Response.ErrorMsg)
	}

	if err := export.Write(out, res.Response.Model, f); err != nil {
		return fmt.Errorf("failed to export model: %w", err)
	}
	a.logger.Debug("Model exported.", "format", f)
	return nil
}

// Serve runs the HTTP server until ctx is cancelled.
func (a *App) Serve(ctx context.Context, ready chan<- string) error {
	srv := server.New(a.engine, a.logger)
	return srv.Run(a.context(ctx), a.config.Server.Addr(), a.config.Server.ShutdownTimeout, ready)
}

func writeDiagnostics(w io.Writer, res *engine.FileResult, color bool) error {
	diags := diag.Diagnostics(res.Response.Err)
	if err := diag.Write(w, res.Path, res.Source, diags, DiagnosticsWidth, color); err != nil {
		return fmt.Errorf("failed to write diagnostics: %w", err)
	}
	return nil
}
