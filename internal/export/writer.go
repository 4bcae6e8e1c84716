// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/jsdmbrs/internal/model"
	"gopkg.in/yaml.v3"
)

// Format is an output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatHCL  Format = "hcl"
)

// Formats lists the supported encodings.
var Formats = []Format{FormatJSON, FormatYAML, FormatHCL}

// ParseFormat accepts a format name in any case; "yml" is an alias of yaml.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatJSON, FormatYAML, FormatHCL:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported export format %q", s)
}

// Extension is the file extension for the format, including the dot.
func (f Format) Extension() string {
	return "." + string(f)
}

// Write encodes m to w.
func Write(w io.Writer, m *model.EntityModel, f Format) error {
	switch f {
	case FormatJSON:
		return writeJSON(w, NewDocument(m))
	case FormatYAML:
		return writeYAML(w, NewDocument(m))
	case FormatHCL:
		_, err := w.Write(HCL(m))
		return err
	}
	return fmt.Errorf("unsupported export format %q", f)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
