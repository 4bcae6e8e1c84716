// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package catalog holds the closed set of builtin property types understood by
// the JSD-MBRS grammar. Each keyword maps to a kind, a default-value template
// for the generated backend, and a primary-key flag.
//
// The table is rebuilt on every call to Builtins so that a validation run never
// shares mutable state with another run.
package catalog

import "strings"

// Kind is the closed set of builtin type families.
type Kind int

const (
	KindID Kind = iota + 1
	KindPrimitive
	KindWrapper
	KindOther
	KindDate
	KindList
)

// String returns the type family name as used in diagnostics.
func (k Kind) String() string {
	switch k {
	case KindID:
		return "IDType"
	case KindPrimitive:
		return "PrimitiveDataType"
	case KindWrapper:
		return "WrapperDataType"
	case KindOther:
		return "OtherDataType"
	case KindDate:
		return "DateType"
	case KindList:
		return "ListType"
	default:
		return "UnknownType"
	}
}

// PropertyType is a builtin type keyword together with its backend default.
// DefaultValue of a collection shape holds a "{}" placeholder for the element
// type. The first "{}" is the placeholder.
type PropertyType struct {
	Kind         Kind
	Keyword      string
	DefaultValue string
}

// IsPrimaryKey reports whether a property of this type is an entity key.
func (t *PropertyType) IsPrimaryKey() bool {
	return t != nil && t.Kind == KindID
}

// IsList reports whether the type is a collection shape.
func (t *PropertyType) IsList() bool {
	return t != nil && t.Kind == KindList
}

// Format fills the placeholder of a collection default with the element type.
func (t *PropertyType) Format(elem string) string {
	return strings.Replace(t.DefaultValue, "{}", elem, 1)
}

// Collection shape keywords.
const (
	ShapeArray   = "array"
	ShapeLinked  = "linked"
	ShapeHashMap = "hashmap"
	ShapeHashSet = "hashset"
	ShapeTreeMap = "treemap"
	ShapeList    = "list"
)

type entry struct {
	kind     Kind
	keywords []string
	def      string
}

// entries is the source table; the order is the order of Keywords.
var entries = []entry{
	{KindID, []string{"id", "identifier", "uniqueId", "key", "primaryKey"}, "UUID.randomUUID()"},
	{KindPrimitive, []string{"byte", "short", "int"}, "0"},
	{KindPrimitive, []string{"char"}, "'c'"},
	{KindPrimitive, []string{"float"}, "0.0F"},
	{KindPrimitive, []string{"long"}, "0L"},
	{KindPrimitive, []string{"double"}, "0.0D"},
	{KindPrimitive, []string{"boolean"}, "false"},
	{KindWrapper, []string{"Byte", "Short", "Integer"}, "0"},
	{KindWrapper, []string{"Character"}, "'c'"},
	{KindWrapper, []string{"Float"}, "0.0F"},
	{KindWrapper, []string{"Long"}, "0L"},
	{KindWrapper, []string{"Double"}, "0.0D"},
	{KindWrapper, []string{"Boolean"}, "false"},
	{KindOther, []string{"str", "string", "String"}, `""`},
	{KindDate, []string{"date"}, "LocalDate.of(1970, 01, 01)"},
	{KindDate, []string{"time"}, "LocalTime.of(00, 00, 00, 00)"},
	{KindDate, []string{"datetime"}, "LocalDateTime.of(1970, 01, 01, 00, 00, 00, 00)"},
	{KindList, []string{ShapeArray}, "new ArrayList<{}>()"},
	{KindList, []string{ShapeLinked}, "new LinkedList<{}>()"},
	{KindList, []string{ShapeHashMap}, "new HashMap<String, {}>()"},
	{KindList, []string{ShapeHashSet}, "new HashSet<{}>()"},
	{KindList, []string{ShapeTreeMap}, "new TreeMap<String, {}>()"},
	{KindList, []string{ShapeList}, "new {}[] {}"},
}

// Builtins returns a freshly built keyword table.
func Builtins() map[string]*PropertyType {
	out := make(map[string]*PropertyType, 32)
	for _, e := range entries {
		for _, kw := range e.keywords {
			out[kw] = &PropertyType{Kind: e.kind, Keyword: kw, DefaultValue: e.def}
		}
	}
	return out
}

// Lookup returns a fresh builtin type for kw.
func Lookup(kw string) (*PropertyType, bool) {
	for _, e := range entries {
		for _, k := range e.keywords {
			if k == kw {
				return &PropertyType{Kind: e.kind, Keyword: kw, DefaultValue: e.def}, true
			}
		}
	}
	return nil, false
}

// Keywords returns every builtin keyword in table order.
func Keywords() []string {
	var out []string
	for _, e := range entries {
		out = append(out, e.keywords...)
	}
	return out
}

// IsListShape reports whether kw names a collection shape.
func IsListShape(kw string) bool {
	switch kw {
	case ShapeArray, ShapeLinked, ShapeHashMap, ShapeHashSet, ShapeTreeMap, ShapeList:
		return true
	}
	return false
}

var boxed = map[string]string{
	"byte":    "Byte",
	"short":   "Short",
	"int":     "Integer",
	"char":    "Character",
	"float":   "Float",
	"long":    "Long",
	"double":  "Double",
	"boolean": "Boolean",
}

// BoxedName returns the backend reference type for a keyword. Primitives map to
// their wrapper, string aliases to String, everything else is returned as is.
func BoxedName(kw string) string {
	if b, ok := boxed[kw]; ok {
		return b
	}
	switch kw {
	case "str", "string":
		return "String"
	}
	return kw
}
