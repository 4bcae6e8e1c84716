// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package syntax turns JSD-MBRS source text into a raw parse tree. It knows
// the grammar only; names, types and literals are interpreted later by the
// semantic package.
package syntax

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/jsdmbrs/internal/ctxlog"
	"github.com/specialistvlad/jsdmbrs/internal/diag"
)

// FileExtension is the extension of JSD-MBRS source files.
const FileExtension = ".jsdmbrs"

// The lexer switches into the Value state after '=' so that a literal is
// captured verbatim up to the terminating ';'.
var dslLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{Name: "Comment", Pattern: `//[^\n]*`},
		{Name: "Whitespace", Pattern: `\s+`},
		{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
		{Name: "Multiplicity", Pattern: `[1*]\.\.[1*]`},
		{Name: "Assign", Pattern: `=`, Action: lexer.Push("Value")},
		{Name: "Ident", Pattern: `[a-zA-Z_$][a-zA-Z0-9_$]*`},
		{Name: "Punct", Pattern: `[{}();:,+]`},
	},
	"Value": {
		{Name: "Whitespace", Pattern: `\s+`},
		{Name: "Literal", Pattern: `(?:"(?:\\.|[^"\\])*"|'[^']*'|[^;"'])+`},
		{Name: "Semi", Pattern: `;`, Action: lexer.Pop()},
	},
})

var parser = participle.MustBuild[File](
	participle.Lexer(dslLexer),
	participle.Elide("Comment", "Whitespace"),
	participle.Unquote("String"),
	participle.UseLookahead(2),
)

// Grammar returns the EBNF of the accepted language.
func Grammar() string {
	return parser.String()
}

// Parse parses src. Grammar violations are returned as *diag.SyntaxError.
func Parse(ctx context.Context, filename string, src []byte) (*File, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Parsing source.", "file", filename, "bytes", len(src))

	file, err := parser.ParseBytes(filename, src)
	if err != nil {
		synErr := toSyntaxError(filename, src, err)
		logger.Debug("Syntax error.", "file", filename, "error", synErr.Message)
		return nil, synErr
	}

	logger.Debug("Source parsed.", "file", filename, "entities", len(file.Entities))
	return file, nil
}

func toSyntaxError(filename string, src []byte, err error) *diag.SyntaxError {
	var perr participle.Error
	if !errors.As(err, &perr) {
		return &diag.SyntaxError{
			Message: err.Error(),
			Subject: hcl.Range{Filename: filename, Start: hcl.InitialPos, End: hcl.InitialPos},
		}
	}

	pos := perr.Position()
	if pos.Filename == "" {
		pos.Filename = filename
	}
	synErr := &diag.SyntaxError{Near: nearText(src, pos.Offset)}

	var unexpected *participle.UnexpectedTokenError
	if errors.As(err, &unexpected) {
		if unexpected.Unexpected.EOF() {
			synErr.Found = "end of file"
		} else {
			synErr.Found = unexpected.Unexpected.Value
		}
		synErr.Expected = unexpected.Expect
	}

	length := len(synErr.Found)
	if synErr.Found == "end of file" {
		length = 0
	}
	end := pos
	end.Offset += length
	end.Column += utf8.RuneCountInString(synErr.Found[:length])
	synErr.Subject = Range(pos, end)

	var msg strings.Builder
	fmt.Fprintf(&msg, "Syntax error near %q", synErr.Near)
	switch {
	case synErr.Expected != "" && synErr.Found != "":
		fmt.Fprintf(&msg, ": expected %s but found %q!", synErr.Expected, synErr.Found)
	case synErr.Found != "":
		fmt.Fprintf(&msg, ": unexpected %q!", synErr.Found)
	default:
		fmt.Fprintf(&msg, ": %s!", perr.Message())
	}
	synErr.Message = msg.String()
	return synErr
}

// nearText returns up to 20 characters of the line that precede offset.
func nearText(src []byte, offset int) string {
	if offset > len(src) {
		offset = len(src)
	}
	lineStart := strings.LastIndexByte(string(src[:offset]), '\n') + 1
	near := strings.TrimSpace(string(src[lineStart:offset]))
	if n := utf8.RuneCountInString(near); n > 20 {
		r := []rune(near)
		near = string(r[n-20:])
	}
	return near
}

// Range converts a pair of lexer positions to an hcl.Range.
func Range(start, end lexer.Position) hcl.Range {
	if end.Offset < start.Offset {
		end = start
	}
	return hcl.Range{
		Filename: start.Filename,
		Start:    hcl.Pos{Line: start.Line, Column: start.Column, Byte: start.Offset},
		End:      hcl.Pos{Line: end.Line, Column: end.Column, Byte: end.Offset},
	}
}
