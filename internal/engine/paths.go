// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/specialistvlad/jsdmbrs/internal/ctxlog"
	"github.com/specialistvlad/jsdmbrs/internal/fsutil"
	"github.com/specialistvlad/jsdmbrs/internal/syntax"
)

// ResolvePath returns the source files at path. A file is returned as is when
// it has the source extension; a directory is searched recursively. The
// result is sorted.
func ResolvePath(ctx context.Context, path string) ([]string, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Resolving source path.", "path", path)
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("source path not found: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("error accessing path %s: %w", path, err)
	}

	if !info.IsDir() {
		logger.Debug("Path is a single file.", "file", path)
		if filepath.Ext(path) != syntax.FileExtension {
			return nil, fmt.Errorf("specified file is not a %s file: %s", syntax.FileExtension, path)
		}
		return []string{path}, nil
	}

	logger.Debug("Path is a directory, scanning for source files.", "directory", path)
	files, err := fsutil.FindFilesByExtension(path, syntax.FileExtension)
	if err != nil {
		return nil, fmt.Errorf("error scanning %s: %w", path, err)
	}
	return files, nil
}
