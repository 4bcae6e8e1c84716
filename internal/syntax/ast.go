// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package syntax

import "github.com/alecthomas/participle/v2/lexer"

// File is the raw parse tree of one source file. Nothing here is resolved or
// validated beyond the grammar; the semantic package builds the model from it.
type File struct {
	Pos lexer.Position

	Database *Database `parser:"@@?"`
	Entities []*Entity `parser:"@@+"`
}

// Database is the optional database block.
type Database struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Driver      *Driver      `parser:"'Database' '{' 'DB' 'driver' ':' @@ ';'"`
	Name        *Field       `parser:"'DB' 'name' ':' @@ ';'"`
	Credentials *Credentials `parser:"@@? '}'"`
}

// Credentials are the optional username and password entries.
type Credentials struct {
	Username *Field `parser:"'DB' 'username' ':' @@ ';'"`
	Password *Field `parser:"'DB' 'password' ':' @@ ';'"`
}

// Driver is the database driver keyword.
type Driver struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Value string `parser:"@('postgresql' | 'mysql' | 'sqlserver' | 'oracle')"`
}

// Field is a quoted database value with its position.
type Field struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Value string `parser:"@String"`
}

// Entity is a class declaration.
type Entity struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Name         *Ident         `parser:"'class' @@ '{'"`
	Properties   []*Property    `parser:"@@*"`
	Constructors []*Constructor `parser:"('Constructors' '{' (@@ ';')* '}')?"`
	Methods      []*Method      `parser:"('Methods' '{' @@* '}')?"`
	ToString     bool           `parser:"(@'toString' ';')? '}'"`
}

// Ident is a name with its position.
type Ident struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Name string `parser:"@Ident"`
}

// Property is a field declaration.
type Property struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Constant     bool          `parser:"@('const' | 'constant')?"`
	Name         *Ident        `parser:"@@ ':'"`
	Type         *DataType     `parser:"@@"`
	Relationship *Relationship `parser:"@@?"`
	Getter       bool          `parser:"@('get' | 'getter')?"`
	Setter       bool          `parser:"@('set' | 'setter')?"`
	Value        *Literal      `parser:"('=' @@)? ';'"`
}

// DataType is a type name with an optional collection shape in front.
type DataType struct {
	Pos    lexer.Position
	EndPos lexer.Position

	ListType string `parser:"@('array' | 'linked' | 'hashmap' | 'hashset' | 'treemap' | 'list')?"`
	Name     string `parser:"@Ident"`
}

// Relationship is a multiplicity with an optional owner marker.
type Relationship struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Multiplicity string `parser:"@Multiplicity"`
	Owner        bool   `parser:"@'+'?"`
}

// Literal is the raw text between '=' and ';'.
type Literal struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Text string `parser:"@Literal"`
}

// Constructor is an entry of the Constructors block.
type Constructor struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Empty   bool       `parser:"  @'empty'"`
	Default bool       `parser:"| @'default'"`
	Params  *ParamList `parser:"| @@"`
}

// ParamList is an explicit constructor parameter list.
type ParamList struct {
	Names []*Ident `parser:"'(' (@@ (',' @@)*)? ')'"`
}

// Method is an entry of the Methods block.
type Method struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Modifiers []string    `parser:"@('public' | 'private' | 'protected' | 'static' | 'abstract' | 'final')*"`
	Return    *MethodType `parser:"@@"`
	Name      *Ident      `parser:"@@ '('"`
	Params    []*Param    `parser:"(@@ (',' @@)*)? ')' ';'"`
}

// MethodType is a method's return type.
type MethodType struct {
	Pos  lexer.Position
	Void bool      `parser:"  @'void'"`
	Type *DataType `parser:"| @@"`
}

// Param is a typed method parameter.
type Param struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Type *DataType `parser:"@@"`
	Name *Ident    `parser:"@@"`
}
