// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package enrich derives the facts the generated backend needs from validated
// declarations: default values, initializer expressions for constants, the
// default constructor's parameters, the ID property and the relationship list.
// Every function here is pure.
package enrich

import (
	"sort"
	"strconv"
	"strings"

	"github.com/specialistvlad/jsdmbrs/internal/catalog"
	"github.com/specialistvlad/jsdmbrs/internal/model"
	"github.com/specialistvlad/jsdmbrs/internal/values"
)

// JavaType returns the backend type name of an element or scalar type.
func JavaType(t model.TypeRef) string {
	b, ok := t.(model.Builtin)
	if !ok {
		return t.TypeName()
	}
	if b.Kind == catalog.KindID {
		return "UUID"
	}
	return javaKeyword(b.Keyword)
}

func javaKeyword(kw string) string {
	switch kw {
	case "str", "string":
		return "String"
	case "date":
		return "LocalDate"
	case "time":
		return "LocalTime"
	case "datetime":
		return "LocalDateTime"
	}
	return kw
}

// DefaultValue is the initial value of a property that is not a constant.
// Entity references are constructed, collections start empty and scalars take
// the catalog default.
func DefaultValue(t model.TypeRef, list *catalog.PropertyType) string {
	if list != nil {
		if list.Keyword == catalog.ShapeList {
			return list.Format(JavaType(t))
		}
		return list.Format(catalog.BoxedName(JavaType(t)))
	}
	switch v := t.(type) {
	case model.EntityRef:
		return "new " + v.Entity + "()"
	case model.Builtin:
		return v.DefaultValue
	}
	return ""
}

// ScalarInitializer renders an accepted scalar literal as a backend expression.
func ScalarInitializer(tag, literal string) string {
	lit := values.Normalize(tag, literal)
	switch tag {
	case "byte", "Byte":
		return "(byte) " + lit
	case "short", "Short":
		return "(short) " + lit
	case "date":
		return "LocalDate.parse(" + strconv.Quote(lit) + ")"
	case "time":
		return "LocalTime.parse(" + strconv.Quote(lit) + ")"
	case "datetime":
		return "LocalDateTime.parse(" + strconv.Quote(strings.Replace(lit, " ", "T", 1)) + ")"
	}
	return lit
}

// Initializer builds the construction expression of a collection constant.
// The expression is the catalog template of the shape with every element
// inserted in order; no elements yields the empty template. The list shape is
// a plain array and keeps primitive element types.
func Initializer(elemTag string, shape *catalog.PropertyType, elements []string) string {
	exprs := make([]string, len(elements))
	for i, e := range elements {
		exprs[i] = ScalarInitializer(elemTag, e)
	}

	if shape.Keyword == catalog.ShapeList {
		empty := shape.Format(javaKeyword(elemTag))
		return strings.TrimSuffix(empty, "{}") + "{" + strings.Join(exprs, ", ") + "}"
	}

	empty := shape.Format(catalog.BoxedName(javaKeyword(elemTag)))
	if len(exprs) == 0 {
		return empty
	}

	var args string
	switch shape.Keyword {
	case catalog.ShapeHashMap, catalog.ShapeTreeMap:
		entries := make([]string, len(exprs))
		for i, e := range exprs {
			entries[i] = "Map.entry(" + strconv.Quote(strconv.Itoa(i)) + ", " + e + ")"
		}
		args = "Map.ofEntries(" + strings.Join(entries, ", ") + ")"
	default:
		args = "List.of(" + strings.Join(exprs, ", ") + ")"
	}
	return strings.TrimSuffix(empty, "()") + "(" + args + ")"
}

// Literal re-serialises normalised elements as a collection literal in the
// source syntax.
func Literal(elements []string) string {
	return values.Join(elements)
}

// NormalizeElements validates and normalises the elements of a collection
// literal. It stops at the first invalid element and returns its error.
func NormalizeElements(elemTag string, elements []string) ([]string, error) {
	out := make([]string, 0, len(elements))
	for _, e := range elements {
		if err := values.Check(elemTag, e); err != nil {
			return nil, err
		}
		out = append(out, values.Normalize(elemTag, e))
	}
	return out, nil
}

// DefaultConstructorParams lists every non-constant property in declaration
// order.
func DefaultConstructorParams(props []*model.Property) []string {
	var out []string
	for _, p := range props {
		if !p.Constant {
			out = append(out, p.Name)
		}
	}
	return out
}

// IDProperty returns the name of the first primary-key property.
func IDProperty(props []*model.Property) string {
	for _, p := range props {
		if p.PrimaryKey {
			return p.Name
		}
	}
	return ""
}

// Relationships returns the properties that declare a relationship.
func Relationships(props []*model.Property) []*model.Property {
	var out []*model.Property
	for _, p := range props {
		if p.Relationship != nil {
			out = append(out, p)
		}
	}
	return out
}

// Signature canonicalises a constructor for uniqueness checks. An explicit
// parameter list that names exactly the non-constant properties is the
// logical default constructor and an empty list is the logical empty one.
func Signature(empty, isDefault bool, params []string, props []*model.Property) string {
	switch {
	case isDefault:
		return "default"
	case empty, len(params) == 0:
		return "empty"
	}

	sorted := append([]string(nil), params...)
	sort.Strings(sorted)

	defaults := DefaultConstructorParams(props)
	sort.Strings(defaults)
	if strings.Join(sorted, ",") == strings.Join(defaults, ",") {
		return "default"
	}
	return "[" + strings.Join(sorted, ", ") + "]"
}
