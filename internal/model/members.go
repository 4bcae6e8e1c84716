// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/jsdmbrs/internal/catalog"
)

// Constructor is a declared or synthesized constructor.
type Constructor struct {
	Empty   bool
	Default bool
	// Properties are the parameter names. For the default constructor this is
	// every non-constant property in declaration order.
	Properties []string
	// Signature is "default", "empty" or the bracketed sorted parameter list.
	Signature string
	Range     hcl.Range
}

// Method is a declared method stub.
type Method struct {
	Name      string
	Modifiers []string
	Return    *ReturnType
	Params    []*Param
	Range     hcl.Range
}

// ReturnType is either void or a possibly list-wrapped type.
type ReturnType struct {
	Void     bool
	Type     TypeRef
	ListType *catalog.PropertyType
}

// Param is a method parameter.
type Param struct {
	Name     string
	Type     TypeRef
	ListType *catalog.PropertyType
	Range    hcl.Range
}
