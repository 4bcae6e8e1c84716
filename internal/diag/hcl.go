// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package diag

import (
	"errors"
	"io"

	"github.com/hashicorp/hcl/v2"
)

// Diagnostics converts an error from a generation run into hcl diagnostics.
func Diagnostics(err error) hcl.Diagnostics {
	if err == nil {
		return nil
	}

	var synErr *SyntaxError
	if errors.As(err, &synErr) {
		subject := synErr.Subject
		return hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Syntax error",
			Detail:   synErr.Message,
			Subject:  &subject,
		}}
	}

	var semErr *SemanticError
	if errors.As(err, &semErr) {
		subject := semErr.Subject
		return hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Semantic error (" + semErr.Type.String() + ")",
			Detail:   semErr.Message,
			Subject:  &subject,
		}}
	}

	return hcl.Diagnostics{{
		Severity: hcl.DiagError,
		Summary:  "Error",
		Detail:   err.Error(),
	}}
}

// Write renders diagnostics with a source snippet for each subject.
func Write(w io.Writer, filename string, src []byte, diags hcl.Diagnostics, width uint, color bool) error {
	files := map[string]*hcl.File{
		filename: {Bytes: src},
	}
	return hcl.NewDiagnosticTextWriter(w, files, width, color).WriteDiagnostics(diags)
}
