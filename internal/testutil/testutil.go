// Package testutil provides test helper functions.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luckydonald/copybara/fs"
)

// WriteTree creates every file in files under base, making parent
// directories as needed. Keys are slash-separated paths relative to
// base, values are file contents.
func WriteTree(t *testing.T, fsys fs.Filesystem, base string, files map[string]string) {
	t.Helper()
	for path, content := range files {
		full := fsys.Join(base, filepath.FromSlash(path))
		require.NoError(t, fsys.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, fsys.WriteFile(full, []byte(content), 0o644))
	}
}

// ReadTree maps the relative slash-separated path of every regular
// file under base to its content. Symlinks appear as "-> target".
// Directories are omitted; check them with fsys.Exists.
func ReadTree(t *testing.T, fsys fs.Filesystem, base string) map[string]string {
	t.Helper()
	tree := map[string]string{}
	err := fsys.Walk(base, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(base, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if rel == "." || info.IsDir() {
			return nil
		}
		if info.Mode()&os.ModeSymlink != 0 {
			target, err := fsys.Readlink(p)
			if err != nil {
				return err
			}
			tree[rel] = "-> " + target
			return nil
		}
		b, err := fsys.ReadFile(p)
		if err != nil {
			return err
		}
		tree[rel] = string(b)
		return nil
	})
	require.NoError(t, err)
	return tree
}
