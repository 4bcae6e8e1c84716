// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package semantic

import "github.com/specialistvlad/jsdmbrs/internal/syntax"

// Visitor receives the nodes of a parse tree in validation order. Returning an
// error stops the walk.
type Visitor interface {
	EnterFile(*syntax.File) error
	VisitDatabase(*syntax.Database) error
	EnterEntity(*syntax.Entity) error
	VisitProperty(*syntax.Property) error
	VisitConstructor(*syntax.Constructor) error
	VisitMethod(*syntax.Method) error
	LeaveEntity(*syntax.Entity) error
	LeaveFile(*syntax.File) error
}

// Walk visits file bottom-up: the database block, then each entity's
// properties, constructors and methods before the entity itself, and the
// whole file last. EnterFile runs before anything else.
func Walk(file *syntax.File, v Visitor) error {
	if err := v.EnterFile(file); err != nil {
		return err
	}
	if file.Database != nil {
		if err := v.VisitDatabase(file.Database); err != nil {
			return err
		}
	}
	for _, e := range file.Entities {
		if err := walkEntity(e, v); err != nil {
			return err
		}
	}
	return v.LeaveFile(file)
}

func walkEntity(e *syntax.Entity, v Visitor) error {
	if err := v.EnterEntity(e); err != nil {
		return err
	}
	for _, p := range e.Properties {
		if err := v.VisitProperty(p); err != nil {
			return err
		}
	}
	for _, c := range e.Constructors {
		if err := v.VisitConstructor(c); err != nil {
			return err
		}
	}
	for _, m := range e.Methods {
		if err := v.VisitMethod(m); err != nil {
			return err
		}
	}
	return v.LeaveEntity(e)
}
