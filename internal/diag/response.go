// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package diag

import (
	"errors"

	"github.com/specialistvlad/jsdmbrs/internal/model"
)

// Status is the outcome of a generation run.
type Status string

const (
	StatusOK    Status = "OK"
	StatusError Status = "ERROR"
)

// ErrorClass tells callers which family an error belongs to.
type ErrorClass string

const (
	ClassSyntax   ErrorClass = "SyntaxError"
	ClassSemantic ErrorClass = "SemanticError"
	ClassOther    ErrorClass = "Error"
)

// Response is the uniform result of a generation run. On success Model is
// set; on failure the error fields describe the first violated rule.
type Response struct {
	Status      Status       `json:"status"`
	ErrorMsg    string       `json:"errorMsg,omitempty"`
	ErrorClass  ErrorClass   `json:"errorClass,omitempty"`
	ErrType     ErrType      `json:"errType,omitempty"`
	SearchValue *SearchValue `json:"searchValue,omitempty"`
	Line        int          `json:"line,omitempty"`
	Col         int          `json:"col,omitempty"`
	NearPart    string       `json:"nearPart,omitempty"`
	FoundPart   string       `json:"foundPart,omitempty"`
	Highlights  []Highlight  `json:"highlights,omitempty"`

	Err   error              `json:"-"`
	Model *model.EntityModel `json:"-"`
}

// OK wraps a successfully built model.
func OK(m *model.EntityModel) *Response {
	return &Response{Status: StatusOK, Model: m}
}

// FromError classifies err. src is the source the error refers to and is
// used to compute highlights for semantic errors; it may be nil.
func FromError(err error, src []byte) *Response {
	resp := &Response{Status: StatusError, Err: err, ErrorMsg: err.Error()}

	var synErr *SyntaxError
	var semErr *SemanticError
	switch {
	case errors.As(err, &synErr):
		resp.ErrorClass = ClassSyntax
		resp.ErrorMsg = synErr.Error()
		resp.Line = synErr.Subject.Start.Line
		resp.Col = synErr.Subject.Start.Column
		resp.NearPart = synErr.Near
		resp.FoundPart = synErr.Found
	case errors.As(err, &semErr):
		resp.ErrorClass = ClassSemantic
		resp.ErrorMsg = semErr.Error()
		resp.ErrType = semErr.Type
		resp.Line = semErr.Subject.Start.Line
		resp.Col = semErr.Subject.Start.Column
		if !semErr.Search.IsZero() {
			sv := semErr.Search
			resp.SearchValue = &sv
		}
		if src != nil {
			resp.Highlights = Locate(src, semErr)
		}
	default:
		resp.ErrorClass = ClassOther
	}
	return resp
}

// Failed reports whether the run produced an error.
func (r *Response) Failed() bool {
	return r.Status != StatusOK
}
