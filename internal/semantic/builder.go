// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package semantic validates a parse tree and builds the enriched model from
// it. Rules run in a fixed order and the first violation aborts the run with a
// *diag.SemanticError.
package semantic

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/jsdmbrs/internal/catalog"
	"github.com/specialistvlad/jsdmbrs/internal/ctxlog"
	"github.com/specialistvlad/jsdmbrs/internal/diag"
	"github.com/specialistvlad/jsdmbrs/internal/model"
	"github.com/specialistvlad/jsdmbrs/internal/syntax"
)

// Project holds the facts about the target project that the caller knows and
// the source does not.
type Project struct {
	BuildTool   string
	Name        string
	PackageTree string
	AppFileName string
	// ExistingDriver is the database driver already present in the project,
	// as a driver keyword or display name. Empty when there is none.
	ExistingDriver string
}

// Options configure a Build.
type Options struct {
	Project Project
}

// Build validates file and returns the enriched model.
func Build(ctx context.Context, file *syntax.File, opts Options) (*model.EntityModel, error) {
	b := newBuilder(ctx, opts)
	if err := Walk(file, b); err != nil {
		return nil, err
	}
	return b.model, nil
}

type resolved struct {
	typ   model.TypeRef
	shape *catalog.PropertyType
}

// builder implements Visitor. It owns the model under construction; the
// parse tree is only read.
type builder struct {
	logger *slog.Logger
	opts   Options

	types map[*syntax.DataType]resolved
	model *model.EntityModel

	entity *model.Entity
	// ctorParams keeps the raw parameter names of each built constructor for
	// the membership check.
	ctorParams map[*model.Constructor][]*syntax.Ident
	methodKeys map[*model.Method]string
}

func newBuilder(ctx context.Context, opts Options) *builder {
	return &builder{
		logger: ctxlog.FromContext(ctx),
		opts:   opts,
		types:  make(map[*syntax.DataType]resolved),
		model:  &model.EntityModel{},
	}
}

func (b *builder) fail(t diag.ErrType, subject hcl.Range, search diag.SearchValue, format string, args ...any) error {
	err := &diag.SemanticError{
		Message: fmt.Sprintf(format, args...),
		Type:    t,
		Subject: subject,
		Search:  search,
	}
	b.logger.Debug("Semantic check failed.", "errType", t.String(), "line", subject.Start.Line, "error", err.Message)
	return err
}

// EnterFile resolves every type name to a builtin or a declared entity.
func (b *builder) EnterFile(file *syntax.File) error {
	b.logger.Debug("Resolving type references.", "entities", len(file.Entities))

	entities := make(map[string]bool, len(file.Entities))
	for _, e := range file.Entities {
		entities[e.Name.Name] = true
	}

	resolve := func(dt *syntax.DataType) error {
		r := resolved{}
		if dt.ListType != "" {
			r.shape, _ = catalog.Lookup(dt.ListType)
		}
		if pt, ok := catalog.Lookup(dt.Name); ok && !catalog.IsListShape(dt.Name) {
			r.typ = model.Builtin{PropertyType: pt}
		} else if entities[dt.Name] {
			r.typ = model.EntityRef{Entity: dt.Name}
		} else {
			return b.fail(diag.ErrUnknownObject, nameRange(dt), diag.Token(dt.Name),
				msgUnknownObject, fmt.Sprintf(`Unknown object "%s" of class "Type"`, dt.Name), dt.Name)
		}
		b.types[dt] = r
		return nil
	}

	for _, e := range file.Entities {
		for _, p := range e.Properties {
			if err := resolve(p.Type); err != nil {
				return err
			}
		}
		for _, m := range e.Methods {
			if m.Return.Type != nil {
				if err := resolve(m.Return.Type); err != nil {
					return err
				}
			}
			for _, prm := range m.Params {
				if err := resolve(prm.Type); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// nameRange is the span of the type name inside a data type, skipping the
// collection shape keyword.
func nameRange(dt *syntax.DataType) hcl.Range {
	rng := syntax.Range(dt.Pos, dt.EndPos)
	if dt.ListType == "" {
		return rng
	}
	start := rng.End
	start.Byte -= len(dt.Name)
	start.Column -= len([]rune(dt.Name))
	rng.Start = start
	return rng
}

// EnterEntity starts a new model entity.
func (b *builder) EnterEntity(e *syntax.Entity) error {
	b.logger.Debug("Starting semantic checks for class.", "class", e.Name.Name)
	b.entity = &model.Entity{
		Name:     e.Name.Name,
		ToString: e.ToString,
		Range:    syntax.Range(e.Name.Pos, e.Name.EndPos),
	}
	b.ctorParams = make(map[*model.Constructor][]*syntax.Ident)
	b.methodKeys = make(map[*model.Method]string)
	return nil
}

// LeaveFile runs the model-wide rules and fills in project facts.
func (b *builder) LeaveFile(*syntax.File) error {
	b.logger.Debug("Starting semantic checks for model.", "entities", len(b.model.Entities))

	seen := make(map[string]bool, len(b.model.Entities))
	for _, e := range b.model.Entities {
		if seen[e.Name] {
			return b.fail(diag.ErrUniqueClassNames, e.Range, diag.Token(e.Name), msgUniqueClassNames, e.Name)
		}
		seen[e.Name] = true
	}

	if err := b.checkRelationships(); err != nil {
		return err
	}

	p := b.opts.Project
	b.model.BuildTool = p.BuildTool
	b.model.ProjectName = p.Name
	b.model.PackageTree = p.PackageTree
	b.model.AppFileName = p.AppFileName
	if b.model.AppFileName == "" && p.Name != "" {
		b.model.AppFileName = applicationFileName(p.Name)
	}
	b.model.AddDatabaseDependency = b.model.Database != nil && p.ExistingDriver == ""

	b.logger.Debug("Successfully finished semantic checks for model.")
	return nil
}

// applicationFileName derives "<Name>Application.java" from a project name
// such as "acme-shop".
func applicationFileName(project string) string {
	var sb strings.Builder
	upper := true
	for _, r := range project {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		sb.WriteRune(r)
	}
	return sb.String() + "Application.java"
}
