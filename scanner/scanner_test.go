package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestScan(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.txt"), "IF x == 1 THEN go\n")
	writeFile(t, filepath.Join(dir, "a.pseudo"), "THEN notify_user\n")
	writeFile(t, filepath.Join(dir, "nested", "c.pc"), "IF y == 2 THEN go\n")
	writeFile(t, filepath.Join(dir, "notes.md"), "not pseudo-code\n")

	files, err := New(dir, ".txt", ".pseudo", ".pc").Scan()
	require.NoError(t, err)

	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = f.Path
	}
	assert.Equal(t, []string{
		filepath.Join(dir, "a.pseudo"),
		filepath.Join(dir, "b.txt"),
		filepath.Join(dir, "nested", "c.pc"),
	}, paths)

	for _, f := range files {
		assert.Positive(t, f.Size)
	}
}

func TestScanNoExtensionFilter(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "anything.md"), "x\n")

	files, err := New(dir).Scan()
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, filepath.Join(dir, "anything.md"), files[0].Path)
}

func TestScanMissingRoot(t *testing.T) {
	t.Parallel()
	_, err := New(filepath.Join(t.TempDir(), "absent")).Scan()
	assert.Error(t, err)
}
