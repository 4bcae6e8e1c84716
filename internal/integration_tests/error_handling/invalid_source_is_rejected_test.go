package integration_tests

import (
	"testing"

	"github.com/specialistvlad/jsdmbrs/internal/app"
	"github.com/specialistvlad/jsdmbrs/internal/testutil"
	"github.com/stretchr/testify/require"
)

// Test for: a file with a syntax error fails the check with a rendered snippet
func TestErrorHandling_SyntaxError_IsRejected(t *testing.T) {
	t.Parallel()

	// --- Arrange & Act ---
	result := testutil.RunCheck(t, map[string]string{
		"broken.jsdmbrs": `
			class Person {
			    personId: identifier get
			}
		`,
	})

	// --- Assert ---
	require.ErrorIs(t, result.Err, app.ErrInvalidModel)
	require.Contains(t, result.Diagnostics, "Syntax error")
	require.Contains(t, result.Diagnostics, "broken.jsdmbrs")
	testutil.AssertLogged(t, result, "Parsing failed.")
}

// Test for: one invalid file does not hide the result of the others
func TestErrorHandling_ChecksEveryFile(t *testing.T) {
	t.Parallel()

	valid := `
		class Person {
		    personId: identifier get;
		    Constructors {
		        empty;
		        default;
		    }
		}
	`
	result := testutil.RunCheck(t, map[string]string{
		"a.jsdmbrs": valid,
		"b.jsdmbrs": "class person {\n}\n",
		"c.jsdmbrs": valid,
	})

	require.ErrorIs(t, result.Err, app.ErrInvalidModel)
	require.ErrorContains(t, result.Err, "1 of 3 files failed")
	require.Contains(t, result.Diagnostics, "b.jsdmbrs")
	require.NotContains(t, result.Diagnostics, "a.jsdmbrs")
	testutil.AssertLogged(t, result, "Model generated.", "a.jsdmbrs")
	testutil.AssertLogged(t, result, "Model generated.", "c.jsdmbrs")
}
