package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/specialistvlad/jsdmbrs/internal/app"
	"github.com/specialistvlad/jsdmbrs/internal/config"
	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an app run.
type HarnessResult struct {
	LogOutput   string
	Diagnostics string
	Err         error
	Root        string
}

// WriteFiles writes files, keyed by slash-separated relative path, into a
// fresh temporary directory and returns its path.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(Unindent(content)), 0o644))
	}
	return root
}

// NewTestApp creates an App logging at debug level into the returned buffer.
// yamlConfig is optional extra configuration.
func NewTestApp(t *testing.T, yamlConfig string) (*app.App, *SafeBuffer) {
	t.Helper()

	cfg, err := config.Loader{
		Data:    []byte("log:\n  level: debug\n" + yamlConfig),
		Environ: func() []string { return nil },
	}.Load()
	require.NoError(t, err)

	logBuffer := &SafeBuffer{}
	testApp := app.NewApp(logBuffer, cfg)

	t.Cleanup(func() {
		if os.Getenv("JSDMBRS_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})
	return testApp, logBuffer
}

// RunCheck writes files to a temporary directory and checks all of them.
func RunCheck(t *testing.T, files map[string]string) *HarnessResult {
	t.Helper()

	root := WriteFiles(t, files)
	testApp, logBuffer := NewTestApp(t, "")

	var diags bytes.Buffer
	err := testApp.Check(context.Background(), []string{root}, &diags, false)

	return &HarnessResult{
		LogOutput:   logBuffer.String(),
		Diagnostics: diags.String(),
		Err:         err,
		Root:        root,
	}
}
