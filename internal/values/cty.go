// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package values

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zclconf/go-cty/cty"
)

// CtyType returns the cty type a literal of tag converts to.
func CtyType(tag string) cty.Type {
	switch tag {
	case "byte", "Byte", "short", "Short", "int", "Integer", "long", "Long",
		"float", "Float", "double", "Double":
		return cty.Number
	case "boolean", "Boolean":
		return cty.Bool
	default:
		return cty.String
	}
}

// Cty converts an accepted scalar literal into a typed cty value. Quoted
// literals lose their delimiters; dates stay textual in their zero-padded form.
func Cty(tag, literal string) (cty.Value, error) {
	if err := Check(tag, literal); err != nil {
		return cty.NilVal, err
	}
	switch tag {
	case "byte", "Byte", "short", "Short", "int", "Integer":
		n, err := strconv.ParseInt(literal, 10, 64)
		if err != nil {
			return cty.NilVal, fmt.Errorf("converting %q: %w", literal, err)
		}
		return cty.NumberIntVal(n), nil
	case "long", "Long":
		n, err := strconv.ParseInt(literal[:len(literal)-1], 10, 64)
		if err != nil {
			return cty.NilVal, fmt.Errorf("converting %q: %w", literal, err)
		}
		return cty.NumberIntVal(n), nil
	case "float", "Float", "double", "Double":
		f, err := strconv.ParseFloat(literal[:len(literal)-1], 64)
		if err != nil {
			return cty.NilVal, fmt.Errorf("converting %q: %w", literal, err)
		}
		return cty.NumberFloatVal(f), nil
	case "boolean", "Boolean":
		return cty.BoolVal(strings.EqualFold(literal, "true")), nil
	case "char", "Character", "str", "string", "String":
		return cty.StringVal(literal[1 : len(literal)-1]), nil
	default:
		return cty.StringVal(Normalize(tag, literal)), nil
	}
}

// CtyCollection converts validated elements of a collection literal. Sets
// become cty sets, map shapes become maps keyed by element position, every
// other shape becomes a list.
func CtyCollection(shape, elemTag string, elements []string) (cty.Value, error) {
	ety := CtyType(elemTag)
	vals := make([]cty.Value, 0, len(elements))
	for _, e := range elements {
		v, err := Cty(elemTag, e)
		if err != nil {
			return cty.NilVal, err
		}
		vals = append(vals, v)
	}

	switch shape {
	case "hashset":
		if len(vals) == 0 {
			return cty.SetValEmpty(ety), nil
		}
		return cty.SetVal(vals), nil
	case "hashmap", "treemap":
		if len(vals) == 0 {
			return cty.MapValEmpty(ety), nil
		}
		m := make(map[string]cty.Value, len(vals))
		for i, v := range vals {
			m[strconv.Itoa(i)] = v
		}
		return cty.MapVal(m), nil
	default:
		if len(vals) == 0 {
			return cty.ListValEmpty(ety), nil
		}
		return cty.ListVal(vals), nil
	}
}
