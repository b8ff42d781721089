package fsutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luckydonald/copybara/fs/billy"
	"github.com/luckydonald/copybara/internal/testutil"
)

func TestDeleteRecursively_DeletesEverythingByDefault(t *testing.T) {
	fsys := billy.NewMemory()
	testutil.WriteTree(t, fsys, "/dst", map[string]string{
		"a.txt":      "a",
		"sub/b.txt":  "b",
		"sub/deep/c": "c",
	})

	keep, err := NewGlobMatcher("/dst", nil)
	require.NoError(t, err)

	res, err := DeleteRecursively(fsys, "/dst", keep)
	require.NoError(t, err)
	assert.Equal(t, DeleteResult{Deleted: 5}, res, "three files plus two directories")

	entries, err := fsys.ReadDir("/dst")
	require.NoError(t, err)
	assert.Empty(t, entries)

	ok, err := fsys.Exists("/dst")
	require.NoError(t, err)
	assert.True(t, ok, "the root itself stays")
}

func TestDeleteRecursively_KeepsMatchedPaths(t *testing.T) {
	fsys := billy.NewMemory()
	testutil.WriteTree(t, fsys, "/dst", map[string]string{
		"delete-me.txt":     "x",
		"keep.txt":          "kept",
		"logs/app.log":      "log",
		"logs/sub/deep.log": "log",
	})

	keep, err := NewGlobMatcher("/dst", []string{"keep.txt", "logs/**"})
	require.NoError(t, err)

	res, err := DeleteRecursively(fsys, "/dst", keep)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Deleted)

	tree := testutil.ReadTree(t, fsys, "/dst")
	assert.Equal(t, map[string]string{
		"keep.txt":          "kept",
		"logs/app.log":      "log",
		"logs/sub/deep.log": "log",
	}, tree)
}

func TestDeleteRecursively_KeptDirectoryKeepsOnlyItself(t *testing.T) {
	fsys := billy.NewMemory()
	testutil.WriteTree(t, fsys, "/dst", map[string]string{
		"cache/a.txt": "a",
		"cache/b.txt": "b",
	})

	keep, err := NewGlobMatcher("/dst", []string{"cache"})
	require.NoError(t, err)

	res, err := DeleteRecursively(fsys, "/dst", keep)
	require.NoError(t, err)
	assert.Equal(t, DeleteResult{Deleted: 2, Preserved: 1}, res)

	ok, err := fsys.Exists("/dst/cache")
	require.NoError(t, err)
	assert.True(t, ok, "the directory entry itself is kept")

	entries, err := fsys.ReadDir("/dst/cache")
	require.NoError(t, err)
	assert.Empty(t, entries, "children are matched one by one")
}

func TestDeleteRecursively_UnmatchedDirectoryWithKeptChildStays(t *testing.T) {
	fsys := billy.NewMemory()
	testutil.WriteTree(t, fsys, "/dst", map[string]string{
		"sub/keep.txt":   "kept",
		"sub/delete.txt": "x",
	})

	keep, err := NewGlobMatcher("/dst", []string{"sub/keep.txt"})
	require.NoError(t, err)

	res, err := DeleteRecursively(fsys, "/dst", keep)
	require.NoError(t, err)
	assert.Equal(t, DeleteResult{Deleted: 1, Preserved: 1}, res)

	tree := testutil.ReadTree(t, fsys, "/dst")
	assert.Equal(t, map[string]string{"sub/keep.txt": "kept"}, tree)
}

func TestDeleteRecursively_RemovesLinkNotTarget(t *testing.T) {
	fsys := billy.NewMemory()
	testutil.WriteTree(t, fsys, "/outside", map[string]string{"target.txt": "t"})
	require.NoError(t, fsys.MkdirAll("/dst", 0o755))
	require.NoError(t, fsys.Symlink("/outside/target.txt", "/dst/link"))

	keep, err := NewGlobMatcher("/dst", nil)
	require.NoError(t, err)

	res, err := DeleteRecursively(fsys, "/dst", keep)
	require.NoError(t, err)
	assert.Equal(t, DeleteResult{Deleted: 1}, res)

	ok, err := fsys.Exists("/outside/target.txt")
	require.NoError(t, err)
	assert.True(t, ok, "only the link is removed, never its target")
}
