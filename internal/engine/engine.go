// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package engine

import (
	"context"
	"fmt"
	"os"

	"github.com/specialistvlad/jsdmbrs/internal/ctxlog"
	"github.com/specialistvlad/jsdmbrs/internal/diag"
	"github.com/specialistvlad/jsdmbrs/internal/semantic"
	"github.com/specialistvlad/jsdmbrs/internal/syntax"
)

// Engine runs the parse and semantic passes over source text.
type Engine struct {
	opts semantic.Options
}

// New creates an Engine that builds models with opts.
func New(opts semantic.Options) *Engine {
	return &Engine{opts: opts}
}

// FileResult is the outcome of generating one file.
type FileResult struct {
	Path     string
	Source   []byte
	Response *diag.Response
}

// Generate parses and validates src. It never returns nil; failures are
// reported through the response.
func (e *Engine) Generate(ctx context.Context, filename string, src []byte) (resp *diag.Response) {
	ctx = ctxlog.With(ctx, "file", filename)
	logger := ctxlog.FromContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Generation aborted.", "panic", r)
			resp = diag.FromError(fmt.Errorf("internal error: %v", r), nil)
		}
	}()

	file, err := syntax.Parse(ctx, filename, src)
	if err != nil {
		logger.Debug("Parsing failed.", "error", err)
		return diag.FromError(err, src)
	}

	m, err := semantic.Build(ctx, file, e.opts)
	if err != nil {
		logger.Debug("Semantic checks failed.", "error", err)
		return diag.FromError(err, src)
	}

	logger.Info("Model generated.", "entities", len(m.Entities))
	return diag.OK(m)
}

// GenerateFile reads path and generates it. Only I/O failures are returned as
// errors.
func (e *Engine) GenerateFile(ctx context.Context, path string) (*FileResult, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read source file '%s': %w", path, err)
	}
	return &FileResult{Path: path, Source: src, Response: e.Generate(ctx, path, src)}, nil
}

// GeneratePath generates every source file found at path, in order.
func (e *Engine) GeneratePath(ctx context.Context, path string) ([]*FileResult, error) {
	logger := ctxlog.FromContext(ctx)
	files, err := ResolvePath(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve source path '%s': %w", path, err)
	}
	if len(files) == 0 {
		logger.Warn("No source files found at the specified path.", "path", path, "extension", syntax.FileExtension)
		return nil, nil
	}
	logger.Info("Found source files to process.", "count", len(files), "path", path)

	results := make([]*FileResult, 0, len(files))
	for _, f := range files {
		res, err := e.GenerateFile(ctx, f)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}
