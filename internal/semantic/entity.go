// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package semantic

import (
	"strings"

	"github.com/specialistvlad/jsdmbrs/internal/diag"
	"github.com/specialistvlad/jsdmbrs/internal/enrich"
	"github.com/specialistvlad/jsdmbrs/internal/model"
	"github.com/specialistvlad/jsdmbrs/internal/syntax"
)

// VisitConstructor checks a constructor's parameters against the properties
// already built for the current entity. Membership is checked when the entity
// is left.
func (b *builder) VisitConstructor(c *syntax.Constructor) error {
	var params []*syntax.Ident
	if c.Params != nil {
		params = c.Params.Names
	}

	seen := make(map[string]bool, len(params))
	names := make([]string, 0, len(params))
	for _, p := range params {
		if seen[p.Name] {
			return b.fail(diag.ErrConstructorUniqueProperties, syntax.Range(p.Pos, p.EndPos), diag.Token(p.Name),
				msgConstructorUniqueProperties, p.Name)
		}
		seen[p.Name] = true
		names = append(names, p.Name)
	}
	for _, p := range params {
		if prop := b.entity.Property(p.Name); prop != nil && prop.Constant {
			return b.fail(diag.ErrConstructorConstantProperty, syntax.Range(p.Pos, p.EndPos), diag.Token(p.Name),
				msgConstructorConstantProperty, p.Name)
		}
	}

	sig := enrich.Signature(c.Empty, c.Default, names, b.entity.Properties)
	ctor := &model.Constructor{
		Empty:      sig == "empty",
		Default:    sig == "default",
		Properties: names,
		Signature:  sig,
		Range:      syntax.Range(c.Pos, c.EndPos),
	}
	if ctor.Default {
		ctor.Properties = enrich.DefaultConstructorParams(b.entity.Properties)
	}
	if ctor.Empty {
		ctor.Properties = nil
	}

	b.ctorParams[ctor] = params
	b.entity.Constructors = append(b.entity.Constructors, ctor)
	return nil
}

// VisitMethod checks a method stub and appends it to the current entity.
func (b *builder) VisitMethod(m *syntax.Method) error {
	name := m.Name.Name
	at := syntax.Range(m.Name.Pos, m.Name.EndPos)
	if !memberNameRe.MatchString(name) {
		return b.fail(diag.ErrMethodName, at, diag.Token(name), msgMethodName, name, explainPropertyName)
	}

	ret := &model.ReturnType{Void: m.Return.Void}
	if dt := m.Return.Type; dt != nil {
		rt := b.types[dt]
		ret.Type, ret.ListType = rt.typ, rt.shape
		if rt.shape != nil && !model.IsReferenceType(rt.typ) {
			return b.fail(diag.ErrMethodTypeInListType, syntax.Range(dt.Pos, dt.EndPos), diag.Token(dt.Name),
				msgMethodTypeInListType, dt.Name, dt.ListType)
		}
	}

	method := &model.Method{
		Name:      name,
		Modifiers: append([]string(nil), m.Modifiers...),
		Return:    ret,
		Range:     at,
	}
	keys := make([]string, 0, len(m.Params))
	for _, p := range m.Params {
		rt := b.types[p.Type]
		method.Params = append(method.Params, &model.Param{
			Name:     p.Name.Name,
			Type:     rt.typ,
			ListType: rt.shape,
			Range:    syntax.Range(p.Pos, p.EndPos),
		})
		keys = append(keys, typeKey(p.Type))
	}
	b.methodKeys[method] = strings.Join(keys, ", ")

	b.entity.Methods = append(b.entity.Methods, method)
	return nil
}

// typeKey is the parameter type as written, shape included.
func typeKey(dt *syntax.DataType) string {
	if dt.ListType != "" {
		return dt.ListType + " " + dt.Name
	}
	return dt.Name
}

// LeaveEntity runs the entity rules and records the entity on the model.
func (b *builder) LeaveEntity(*syntax.Entity) error {
	e := b.entity
	at := e.Range
	if !classNameRe.MatchString(e.Name) {
		return b.fail(diag.ErrClassName, at, diag.Token(e.Name), msgClassName, e.Name, explainClassName)
	}

	names := make(map[string]bool, len(e.Properties))
	var keys []string
	for _, p := range e.Properties {
		if names[p.Name] {
			return b.fail(diag.ErrUniquePropertyNames, p.Range, diag.Token(p.Name), msgUniquePropertyNames, p.Name, e.Name)
		}
		names[p.Name] = true
		if p.PrimaryKey {
			keys = append(keys, p.Name)
		}
	}
	switch {
	case len(keys) == 0:
		return b.fail(diag.ErrNoIDProperty, at, diag.Token(e.Name), msgNoIDProperty, e.Name)
	case len(keys) > 1:
		quoted := make([]string, len(keys))
		for i, k := range keys {
			quoted[i] = `"` + k + `"`
		}
		return b.fail(diag.ErrMultipleIDProperty, at, diag.Tokens(keys...),
			msgMultipleIDProperties, e.Name, strings.Join(quoted, ", "))
	}

	if err := b.checkConstructors(); err != nil {
		return err
	}

	methods := make(map[string]bool, len(e.Methods))
	for _, m := range e.Methods {
		params := b.methodKeys[m]
		key := m.Name + "(" + params + ")"
		if methods[key] {
			detail := ""
			if params != "" {
				detail = ` with parameter types "(` + params + `)"`
			}
			return b.fail(diag.ErrUniqueMethods, m.Range, diag.Token(m.Name), msgUniqueMethods, m.Name, detail, e.Name)
		}
		methods[key] = true
	}

	e.IDProperty = enrich.IDProperty(e.Properties)
	e.Relationships = enrich.Relationships(e.Properties)
	b.model.Entities = append(b.model.Entities, e)
	b.logger.Debug("Successfully finished semantic checks for class.", "class", e.Name)
	return nil
}

func (b *builder) checkConstructors() error {
	e := b.entity

	// Missing constructors are reported at the last declared one, or at the
	// class name when the block is absent.
	missingAt, missingToken := e.Range, e.Name
	if n := len(e.Constructors); n > 0 {
		missingAt, missingToken = e.Constructors[n-1].Range, "Constructors"
	}

	var hasEmpty, hasDefault bool
	for _, c := range e.Constructors {
		hasEmpty = hasEmpty || c.Empty
		hasDefault = hasDefault || c.Default
	}
	if !hasEmpty {
		return b.fail(diag.ErrEmptyConstructor, missingAt, diag.Token(missingToken), msgEmptyConstructor, e.Name)
	}
	if !hasDefault {
		return b.fail(diag.ErrDefaultConstructor, missingAt, diag.Token(missingToken), msgDefaultConstructor, e.Name)
	}

	for _, c := range e.Constructors {
		for _, p := range b.ctorParams[c] {
			if e.Property(p.Name) == nil {
				return b.fail(diag.ErrConstructorProperty, syntax.Range(p.Pos, p.EndPos), diag.Token(p.Name),
					msgConstructorProperty, p.Name, e.Name)
			}
		}
	}

	sigs := make(map[string]bool, len(e.Constructors))
	for _, c := range e.Constructors {
		if sigs[c.Signature] {
			return b.fail(diag.ErrUniqueConstructors, c.Range, b.constructorSearch(c), msgUniqueConstructors, c.Signature, e.Name)
		}
		sigs[c.Signature] = true
	}
	return nil
}

func (b *builder) constructorSearch(c *model.Constructor) diag.SearchValue {
	params := b.ctorParams[c]
	if len(params) == 0 {
		if c.Default {
			return diag.Token("default")
		}
		return diag.Token("empty")
	}
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name
	}
	return diag.Tokens(names...)
}
