package fsutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/jsdmbrs/internal/fsutil"
	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtension(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	root := t.TempDir()
	for _, name := range []string{
		"b.jsdmbrs",
		"a.jsdmbrs",
		"notes.txt",
		"nested/c.jsdmbrs",
		".git/hidden.jsdmbrs",
	} {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, nil, 0o644))
	}

	// --- Act ---
	files, err := fsutil.FindFilesByExtension(root, ".jsdmbrs")

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(root, "a.jsdmbrs"),
		filepath.Join(root, "b.jsdmbrs"),
		filepath.Join(root, "nested", "c.jsdmbrs"),
	}, files)
}

func TestFindFilesByExtension_Errors(t *testing.T) {
	t.Parallel()

	_, err := fsutil.FindFilesByExtension(t.TempDir(), "")
	require.Error(t, err)

	_, err = fsutil.FindFilesByExtension(filepath.Join(t.TempDir(), "absent"), ".jsdmbrs")
	require.Error(t, err)
}
