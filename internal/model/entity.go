// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/jsdmbrs/internal/catalog"
	"github.com/zclconf/go-cty/cty"
)

// Entity is a declared class.
type Entity struct {
	Name         string
	Properties   []*Property
	Constructors []*Constructor
	Methods      []*Method
	ToString     bool

	// IDProperty is the name of the sole primary-key property.
	IDProperty string
	// Relationships are the properties that carry a relationship, in
	// declaration order.
	Relationships []*Property

	Range hcl.Range
}

// Property returns the property with the given name, or nil.
func (e *Entity) Property(name string) *Property {
	for _, p := range e.Properties {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// Property is a typed field of an entity.
type Property struct {
	Name string
	Type TypeRef
	// ListType is the collection shape, nil for scalar properties.
	ListType *catalog.PropertyType

	Constant      bool
	Value         *Value
	Relationship  *Relationship
	Encapsulation *Encapsulation

	PrimaryKey   bool
	DefaultValue string

	Range hcl.Range
}

// IsList reports whether the property is a collection.
func (p *Property) IsList() bool {
	return p.ListType != nil
}

// Value is the literal of a constant property.
type Value struct {
	// Raw is the literal as written.
	Raw string
	// Literal is Raw in its normalised spelling.
	Literal string
	// Elements are the normalised element literals of a collection value.
	Elements []string
	// Expr is the backend initializer expression.
	Expr string
	// Cty is the typed value.
	Cty cty.Value
}

// Relationship marks an association to another entity.
type Relationship struct {
	Owner bool
	Type  RelationshipType
	Range hcl.Range
}

// Encapsulation lists the accessors of a property.
type Encapsulation struct {
	Getter bool
	Setter bool
}
