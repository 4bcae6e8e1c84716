// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

import (
	"fmt"

	"github.com/specialistvlad/jsdmbrs/internal/catalog"
)

// TypeRef is the resolved type of a property, parameter or return value. It
// is either a Builtin or an EntityRef.
type TypeRef interface {
	// TypeName is the keyword or entity name as written in source.
	TypeName() string
	// IsPrimaryKey reports whether a property of this type is the entity key.
	IsPrimaryKey() bool
	isTypeRef()
}

// Builtin is a catalog type.
type Builtin struct {
	*catalog.PropertyType
}

// TypeName implements TypeRef.
func (b Builtin) TypeName() string { return b.Keyword }

// IsPrimaryKey implements TypeRef.
func (b Builtin) IsPrimaryKey() bool { return b.PropertyType.IsPrimaryKey() }

func (Builtin) isTypeRef() {}

// EntityRef references a declared entity by name. It is never a key.
type EntityRef struct {
	Entity string
}

// TypeName implements TypeRef.
func (e EntityRef) TypeName() string { return e.Entity }

// IsPrimaryKey implements TypeRef.
func (EntityRef) IsPrimaryKey() bool { return false }

func (EntityRef) isTypeRef() {}

// KindOf returns the catalog kind of a builtin type, or zero for entities.
func KindOf(t TypeRef) catalog.Kind {
	if b, ok := t.(Builtin); ok {
		return b.Kind
	}
	return 0
}

// IsEntity reports whether t references an entity.
func IsEntity(t TypeRef) bool {
	_, ok := t.(EntityRef)
	return ok
}

// IsReferenceType reports whether t may be a collection element: a wrapper,
// a string or an entity.
func IsReferenceType(t TypeRef) bool {
	switch v := t.(type) {
	case EntityRef:
		return true
	case Builtin:
		return v.Kind == catalog.KindWrapper || v.Kind == catalog.KindOther
	}
	return false
}

// RelationshipType is the multiplicity of a relationship.
type RelationshipType int

const (
	OneToOne RelationshipType = iota + 1
	OneToMany
	ManyToOne
	ManyToMany
)

var relationshipTokens = map[string]RelationshipType{
	"1..1": OneToOne,
	"1..*": OneToMany,
	"*..1": ManyToOne,
	"*..*": ManyToMany,
}

// ParseRelationshipType converts a source multiplicity such as "1..*".
func ParseRelationshipType(tok string) (RelationshipType, error) {
	if rt, ok := relationshipTokens[tok]; ok {
		return rt, nil
	}
	return 0, fmt.Errorf("unknown relationship multiplicity %q", tok)
}

// String returns the model form: "1-1", "1-n", "n-1" or "n-n".
func (r RelationshipType) String() string {
	switch r {
	case OneToOne:
		return "1-1"
	case OneToMany:
		return "1-n"
	case ManyToOne:
		return "n-1"
	case ManyToMany:
		return "n-n"
	}
	return fmt.Sprintf("RelationshipType(%d)", int(r))
}

// Token returns the source form, e.g. "1..*".
func (r RelationshipType) Token() string {
	for tok, rt := range relationshipTokens {
		if rt == r {
			return tok
		}
	}
	return ""
}

// Annotation returns the JPA annotation for the relationship.
func (r RelationshipType) Annotation() string {
	switch r {
	case OneToOne:
		return "@OneToOne"
	case OneToMany:
		return "@OneToMany"
	case ManyToOne:
		return "@ManyToOne"
	case ManyToMany:
		return "@ManyToMany"
	}
	return ""
}

// Complement is the multiplicity the reciprocal side must declare.
func (r RelationshipType) Complement() RelationshipType {
	switch r {
	case OneToMany:
		return ManyToOne
	case ManyToOne:
		return OneToMany
	}
	return r
}

// MarshalText implements encoding.TextMarshaler.
func (r RelationshipType) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}
