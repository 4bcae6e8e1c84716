package testutil

import (
	"context"
	"strings"
	"testing"

	"github.com/specialistvlad/jsdmbrs/internal/diag"
	"github.com/specialistvlad/jsdmbrs/internal/engine"
	"github.com/specialistvlad/jsdmbrs/internal/model"
	"github.com/specialistvlad/jsdmbrs/internal/semantic"
	"github.com/stretchr/testify/require"
)

// SourceCase defines a single scenario for generating a model from source.
type SourceCase struct {
	Name string
	// Source can be written as a readable, indented multi-line string.
	Source string
	// ErrType is the expected error type name. Empty means success.
	ErrType string
	// Validate performs assertions on the response. It is called in both the
	// success and the failure case.
	Validate func(t *testing.T, resp *diag.Response)
}

// Unindent removes common leading whitespace from a multi-line string,
// allowing for readable, indented source snippets in Go tests.
func Unindent(s string) string {
	lines := strings.Split(s, "\n")
	if strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	if len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return ""
	}

	minIndent := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		indent := len(line) - len(strings.TrimLeft(line, " \t"))
		if minIndent == -1 || indent < minIndent {
			minIndent = indent
		}
	}

	var b strings.Builder
	for _, line := range lines {
		if len(line) >= minIndent && minIndent > 0 {
			line = line[minIndent:]
		} else if minIndent > 0 {
			line = strings.TrimSpace(line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// Generate runs the engine over an unindented copy of source.
func Generate(t *testing.T, source string, opts semantic.Options) *diag.Response {
	t.Helper()
	return engine.New(opts).Generate(context.Background(), "test.jsdmbrs", []byte(Unindent(source)))
}

// RunSourceCases runs every case in parallel.
func RunSourceCases(t *testing.T, cases []SourceCase) {
	t.Helper()

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()

			resp := Generate(t, tc.Source, semantic.Options{})

			if tc.ErrType == "" {
				require.False(t, resp.Failed(), "expected a valid model, got: %s", resp.ErrorMsg)
			} else {
				require.True(t, resp.Failed(), "expected %s, got a valid model", tc.ErrType)
				require.Equal(t, tc.ErrType, resp.ErrType.String(), resp.ErrorMsg)
			}
			if tc.Validate != nil {
				tc.Validate(t, resp)
			}
		})
	}
}

// Entity returns the entity called name from a successful response.
func Entity(t *testing.T, resp *diag.Response, name string) *model.Entity {
	t.Helper()
	require.NotNil(t, resp.Model)
	for _, e := range resp.Model.Entities {
		if e.Name == name {
			return e
		}
	}
	require.Failf(t, "entity not found", "no entity named %q", name)
	return nil
}
