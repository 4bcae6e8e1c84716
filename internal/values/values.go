// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package values checks property literals against their builtin type and
// converts accepted literals into normalised text and typed cty values.
package values

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Layouts of the date family. Input may omit leading zeros; Normalize
// renders the zero-padded form.
const (
	DateLayout     = "2006-1-2"
	TimeLayout     = "15:4:5"
	DateTimeLayout = "2006-1-2 15:4:5"

	dateCanonical     = "2006-01-02"
	timeCanonical     = "15:04:05"
	dateTimeCanonical = "2006-01-02 15:04:05"
)

// Error reports a literal that does not fit its type. Reason is the
// type-specific explanation shown to the user.
type Error struct {
	Tag     string
	Literal string
	Reason  string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("invalid %s literal %q: %s", e.Tag, e.Literal, e.Reason)
}

var reasons = map[string]string{
	"byte":      `Byte value must be a number between -128 and 127`,
	"short":     `Short value must be a number between -32768 and 32767`,
	"char":      `Char value must be a single character string surrounded by single quotes - ''`,
	"int":       `Int value must be a number between -2147483648 and 2147483647`,
	"float":     `Float value must be a float or an integer number that ends with "F"`,
	"long":      `Long value must be a number between -9223372036854775808 and 9223372036854775807 that ends with "L"`,
	"double":    `Double value must be a float or an integer number that ends with "D"`,
	"boolean":   `Boolean value must be "true" or "false"`,
	"Byte":      `Byte value must be a number between -128 and 127`,
	"Short":     `Short value must be a number between -32768 and 32767`,
	"Character": `Character value must be a single character string surrounded by single quotes - ''`,
	"Integer":   `Integer value must be a number between -2147483648 and 2147483647`,
	"Float":     `Float value must be a float or an integer number that ends with "F"`,
	"Long":      `Long value must be a number between -9223372036854775808 and 9223372036854775807 that ends with "L"`,
	"Double":    `Double value must be a float or an integer number that ends with "D"`,
	"Boolean":   `Boolean value must be "true" or "false"`,
	"str":       `String value must be surrounded by double quotes - ""`,
	"string":    `String value must be surrounded by double quotes - ""`,
	"String":    `String value must be surrounded by double quotes - ""`,
	"date":      `Date value must be in YYYY-MM-DD format`,
	"time":      `Time value must be in HH:MM:SS format`,
	"datetime":  `Datetime value must be in YYYY-MM-DD HH:MM:SS format`,
	"array":     `Array type must start with "[" and end with "]"`,
	"linked":    `Linked type must start with "[" and end with "]"`,
	"hashmap":   `Hashmap type must start with "[" and end with "]"`,
	"hashset":   `Hashset type must start with "[" and end with "]"`,
	"treemap":   `Treemap type must start with "[" and end with "]"`,
	"list":      `List type must start with "[" and end with "]"`,
}

// Reason returns the explanation attached to failures for tag.
func Reason(tag string) string {
	if r, ok := reasons[tag]; ok {
		return r
	}
	return fmt.Sprintf("%s values cannot be written as literals", tag)
}

// Check validates literal against the builtin type tag. It returns nil when
// the literal is acceptable and an *Error otherwise. Tags without a literal
// form, such as the ID family, reject every literal.
func Check(tag, literal string) error {
	ok := false
	switch tag {
	case "byte", "Byte":
		ok = inRange(literal, math.MinInt8, math.MaxInt8)
	case "short", "Short":
		ok = inRange(literal, math.MinInt16, math.MaxInt16)
	case "int", "Integer":
		ok = inRange(literal, math.MinInt32, math.MaxInt32)
	case "long", "Long":
		ok = hasSuffix(literal, 'L') && inRange(literal[:len(literal)-1], math.MinInt64, math.MaxInt64)
	case "float", "Float":
		ok = isReal(literal, 'F')
	case "double", "Double":
		ok = isReal(literal, 'D')
	case "char", "Character":
		ok = utf8.RuneCountInString(literal) == 3 && literal[0] == '\'' && literal[len(literal)-1] == '\''
	case "boolean", "Boolean":
		ok = strings.EqualFold(literal, "true") || strings.EqualFold(literal, "false")
	case "str", "string", "String":
		ok = len(literal) >= 2 && literal[0] == '"' && literal[len(literal)-1] == '"'
	case "date":
		ok = parses(DateLayout, literal)
	case "time":
		ok = parses(TimeLayout, literal)
	case "datetime":
		ok = parses(DateTimeLayout, literal)
	case "array", "linked", "hashmap", "hashset", "treemap", "list":
		ok = strings.HasPrefix(literal, "[") && strings.HasSuffix(literal, "]")
	}
	if ok {
		return nil
	}
	return &Error{Tag: tag, Literal: literal, Reason: Reason(tag)}
}

func inRange(s string, lo, hi int64) bool {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return false
	}
	return n >= lo && n <= hi
}

func hasSuffix(s string, suffix byte) bool {
	if s == "" {
		return false
	}
	last := s[len(s)-1]
	return last == suffix || last == suffix+('a'-'A')
}

func isReal(s string, suffix byte) bool {
	if !hasSuffix(s, suffix) {
		return false
	}
	f, err := strconv.ParseFloat(s[:len(s)-1], 64)
	if err != nil {
		return false
	}
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

func parses(layout, s string) bool {
	_, err := time.Parse(layout, s)
	return err == nil
}

// Normalize returns the canonical spelling of an accepted literal. Integers
// lose leading zeros and plus signs, numeric suffixes are upper-cased,
// booleans lower-cased and dates zero-padded. Other literals are returned
// unchanged.
func Normalize(tag, literal string) string {
	switch tag {
	case "byte", "Byte", "short", "Short", "int", "Integer":
		return canonicalInt(literal)
	case "long", "Long":
		if literal == "" {
			return literal
		}
		return canonicalInt(literal[:len(literal)-1]) + "L"
	case "date":
		return reformat(DateLayout, dateCanonical, literal)
	case "time":
		return reformat(TimeLayout, timeCanonical, literal)
	case "datetime":
		return reformat(DateTimeLayout, dateTimeCanonical, literal)
	case "float", "Float", "double", "Double":
		if literal == "" {
			return literal
		}
		return literal[:len(literal)-1] + strings.ToUpper(literal[len(literal)-1:])
	case "boolean", "Boolean":
		return strings.ToLower(literal)
	}
	return literal
}

func canonicalInt(s string) string {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return s
	}
	return strconv.FormatInt(n, 10)
}

func reformat(layout, canonical, s string) string {
	t, err := time.Parse(layout, s)
	if err != nil {
		return s
	}
	return t.Format(canonical)
}

// Elements strips the brackets of a collection literal and splits its body on
// top-level commas. Commas inside quotes or nested brackets do not split.
// An empty body yields no elements.
func Elements(literal string) []string {
	body := strings.TrimSpace(literal)
	body = strings.TrimPrefix(body, "[")
	body = strings.TrimSuffix(body, "]")
	if strings.TrimSpace(body) == "" {
		return nil
	}

	var (
		out   []string
		depth int
		quote rune
		start int
	)
	for i, r := range body {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '"' || r == '\'':
			quote = r
		case r == '[' || r == '(' || r == '{':
			depth++
		case r == ']' || r == ')' || r == '}':
			depth--
		case r == ',' && depth == 0:
			out = append(out, strings.TrimSpace(body[start:i]))
			start = i + 1
		}
	}
	return append(out, strings.TrimSpace(body[start:]))
}

// Join renders elements back into a bracketed collection literal.
func Join(elements []string) string {
	return "[" + strings.Join(elements, ", ") + "]"
}
