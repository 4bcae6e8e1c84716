package server_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/specialistvlad/jsdmbrs/internal/engine"
	"github.com/specialistvlad/jsdmbrs/internal/semantic"
	"github.com/specialistvlad/jsdmbrs/internal/server"
	"github.com/stretchr/testify/require"
)

const validModel = `class Person {
    personId: identifier get;
    name: String get set;
    Constructors {
        empty;
        default;
    }
}
`

func newServer() *server.Server {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return server.New(engine.New(semantic.Options{}), logger)
}

func post(t *testing.T, h http.Handler, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return rec, out
}

func requestBody(t *testing.T, source string) string {
	t.Helper()
	b, err := json.Marshal(server.GenerateRequest{Filename: "person.jsdmbrs", Source: source})
	require.NoError(t, err)
	return string(b)
}

func TestHealth(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	newServer().Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "OK\n", rec.Body.String())
}

func TestGrammar(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	newServer().Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/grammar", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, rec.Body.String())
}

func TestGenerate_OK(t *testing.T) {
	t.Parallel()

	// --- Act ---
	rec, out := post(t, newServer().Handler(), requestBody(t, validModel))

	// --- Assert ---
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "OK", out["status"])
	doc, ok := out["model"].(map[string]any)
	require.True(t, ok, "model missing from response")
	entities := doc["entities"].([]any)
	require.Len(t, entities, 1)
	require.Equal(t, "Person", entities[0].(map[string]any)["name"])
}

func TestGenerate_SemanticError(t *testing.T) {
	t.Parallel()

	src := strings.Replace(validModel, "name: String get set;", "name: Strin get set;", 1)

	rec, out := post(t, newServer().Handler(), requestBody(t, src))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.Equal(t, "ERROR", out["status"])
	require.Equal(t, "unknown_object_error", out["errType"])
	require.NotContains(t, out, "model")
}

func TestGenerate_SyntaxError(t *testing.T) {
	t.Parallel()

	rec, out := post(t, newServer().Handler(), requestBody(t, "class Person {"))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.Equal(t, "ERROR", out["status"])
	require.NotEmpty(t, out["errorMsg"])
}

func TestGenerate_BadRequest(t *testing.T) {
	t.Parallel()

	rec, out := post(t, newServer().Handler(), `{"filename": "x.jsdmbrs"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "ERROR", out["status"])
}

func TestRun_GracefulShutdown(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ready := make(chan string, 1)
	done := make(chan error, 1)

	// --- Act ---
	go func() {
		done <- newServer().Run(ctx, "127.0.0.1:0", time.Second, ready)
	}()

	var addr string
	select {
	case addr = <-ready:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not start")
	}

	resp, err := http.Get("http://" + addr + "/health")
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()

	// --- Assert ---
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
