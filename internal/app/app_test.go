package app_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/specialistvlad/jsdmbrs/internal/app"
	"github.com/specialistvlad/jsdmbrs/internal/export"
	"github.com/specialistvlad/jsdmbrs/internal/testutil"
	"github.com/stretchr/testify/require"
)

const personSource = `
	class Person {
	    personId: identifier get;
	    name: String get set;
	    Constructors {
	        empty;
	        default;
	    }
	}
`

const brokenSource = `
	class Person {
	    personId: identifier get;
	    otherId: id get;
	    Constructors {
	        empty;
	        default;
	    }
	}
`

func TestCheck_AllValid(t *testing.T) {
	t.Parallel()

	// --- Arrange & Act ---
	result := testutil.RunCheck(t, map[string]string{
		"person.jsdmbrs":       personSource,
		"nested/other.jsdmbrs": personSource,
		"nested/ignored.txt":   "not a model",
	})

	// --- Assert ---
	require.NoError(t, result.Err)
	require.Empty(t, result.Diagnostics)
	testutil.AssertLogged(t, result, "Check finished.", "files=2", "failed=0")
}

func TestCheck_ReportsFailures(t *testing.T) {
	t.Parallel()

	result := testutil.RunCheck(t, map[string]string{
		"good.jsdmbrs": personSource,
		"bad.jsdmbrs":  brokenSource,
	})

	require.ErrorIs(t, result.Err, app.ErrInvalidModel)
	require.ErrorContains(t, result.Err, "1 of 2 files failed")
	require.Contains(t, result.Diagnostics, "multiple_id_property_error")
	require.Contains(t, result.Diagnostics, "bad.jsdmbrs")
	testutil.AssertLogged(t, result, "Semantic checks failed.")
}

func TestGenerate_WritesExport(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	root := testutil.WriteFiles(t, map[string]string{"person.jsdmbrs": personSource})
	testApp, _ := testutil.NewTestApp(t, "project:\n  name: people\n")
	var out, diags bytes.Buffer

	// --- Act ---
	err := testApp.Generate(context.Background(), filepath.Join(root, "person.jsdmbrs"), export.FormatJSON, &out, &diags, false)

	// --- Assert ---
	require.NoError(t, err)
	require.Empty(t, diags.String())

	var doc export.Document
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	require.Equal(t, "PeopleApplication.java", doc.Project.AppFileName)
	require.Len(t, doc.Entities, 1)
	require.Equal(t, "personId", doc.Entities[0].IDProperty)
}

func TestGenerate_InvalidModel(t *testing.T) {
	t.Parallel()

	root := testutil.WriteFiles(t, map[string]string{"bad.jsdmbrs": brokenSource})
	testApp, _ := testutil.NewTestApp(t, "")
	var out, diags bytes.Buffer

	err := testApp.Generate(context.Background(), filepath.Join(root, "bad.jsdmbrs"), export.FormatYAML, &out, &diags, false)

	require.ErrorIs(t, err, app.ErrInvalidModel)
	require.Empty(t, out.String())
	require.Contains(t, diags.String(), "otherId")
}

func TestServe_StopsOnCancel(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	testApp, logBuffer := testutil.NewTestApp(t, "server:\n  host: 127.0.0.1\n  port: 0\n  shutdown_timeout: 1s\n")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ready := make(chan string, 1)
	done := make(chan error, 1)

	// --- Act ---
	go func() { done <- testApp.Serve(ctx, ready) }()

	addr := <-ready
	resp, err := http.Get("http://" + addr + "/health")
	require.NoError(t, err)
	_ = resp.Body.Close()
	cancel()

	// --- Assert ---
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, logBuffer.String(), "Server starting.")
}
