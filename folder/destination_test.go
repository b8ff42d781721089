package folder

import (
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luckydonald/copybara"
	"github.com/luckydonald/copybara/console"
	"github.com/luckydonald/copybara/fs"
	"github.com/luckydonald/copybara/fs/billy"
	"github.com/luckydonald/copybara/internal/testutil"
)

func newLocalDestination(t *testing.T, fsys fs.Filesystem, dir string) *Destination {
	t.Helper()
	dst, err := New(fsys, "test", WithLocalFolder(dir), WithCwd("/"))
	require.NoError(t, err)
	return dst
}

func TestWrite_CopiesWorkdirIntoDestination(t *testing.T) {
	fsys := billy.NewMemory()
	testutil.WriteTree(t, fsys, "/work", map[string]string{
		"a.txt":     "alpha",
		"sub/b.txt": "beta",
	})

	w, err := newLocalDestination(t, fsys, "/out").NewWriter()
	require.NoError(t, err)

	cons := &testutil.RecordingConsole{}
	res, err := w.Write(&copybara.TransformResult{Workdir: "/work"}, cons)
	require.NoError(t, err)

	assert.Equal(t, 2, res.FilesCopied)
	assert.Equal(t, 0, res.FilesDeleted)

	tree := testutil.ReadTree(t, fsys, "/out")
	assert.Equal(t, map[string]string{"a.txt": "alpha", "sub/b.txt": "beta"}, tree)

	assert.Equal(t, []string{
		"PROGRESS: FolderDestination: creating /out",
		"PROGRESS: FolderDestination: deleting previous data from /out",
		"PROGRESS: FolderDestination: Copying contents of the workdir to /out",
	}, cons.Messages, "phases report in order")
}

func TestWrite_RepeatedRunsConverge(t *testing.T) {
	fsys := billy.NewMemory()
	testutil.WriteTree(t, fsys, "/work", map[string]string{"a.txt": "v1"})
	testutil.WriteTree(t, fsys, "/out", map[string]string{"stale.txt": "old"})

	dst := newLocalDestination(t, fsys, "/out")
	write := func() *copybara.WriteResult {
		w, err := dst.NewWriter()
		require.NoError(t, err)
		res, err := w.Write(&copybara.TransformResult{Workdir: "/work"}, console.Nop())
		require.NoError(t, err)
		return res
	}

	first := write()
	assert.Equal(t, 1, first.FilesDeleted, "stale content goes away")
	assert.Equal(t, 1, first.FilesCopied)

	second := write()
	assert.Equal(t, 1, second.FilesDeleted, "the previous run's output is cleared")
	assert.Equal(t, 1, second.FilesCopied)

	tree := testutil.ReadTree(t, fsys, "/out")
	assert.Equal(t, map[string]string{"a.txt": "v1"}, tree)
}

func TestWrite_ExcludedPathsSurviveCleaning(t *testing.T) {
	fsys := billy.NewMemory()
	testutil.WriteTree(t, fsys, "/work", map[string]string{"new.txt": "new"})
	testutil.WriteTree(t, fsys, "/out", map[string]string{
		"precious/keep.txt": "kept",
		"stale.txt":         "old",
	})

	w, err := newLocalDestination(t, fsys, "/out").NewWriter()
	require.NoError(t, err)

	res, err := w.Write(&copybara.TransformResult{
		Workdir:                  "/work",
		ExcludedDestinationPaths: []string{"precious", "precious/**"},
	}, console.Nop())
	require.NoError(t, err)

	assert.Equal(t, 1, res.FilesDeleted)
	assert.Equal(t, 2, res.FilesPreserved, "the directory and its file")

	tree := testutil.ReadTree(t, fsys, "/out")
	assert.Equal(t, map[string]string{
		"precious/keep.txt": "kept",
		"new.txt":           "new",
	}, tree)
}

func TestWrite_EmptiedDirectoriesDisappearButRootStays(t *testing.T) {
	fsys := billy.NewMemory()
	require.NoError(t, fsys.MkdirAll("/work", 0o755))
	testutil.WriteTree(t, fsys, "/out", map[string]string{"sub/deep/x.txt": "x"})

	w, err := newLocalDestination(t, fsys, "/out").NewWriter()
	require.NoError(t, err)

	res, err := w.Write(&copybara.TransformResult{Workdir: "/work"}, console.Nop())
	require.NoError(t, err)
	assert.Equal(t, 3, res.FilesDeleted, "one file plus two emptied directories")

	ok, err := fsys.Exists("/out/sub")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = fsys.Exists("/out")
	require.NoError(t, err)
	assert.True(t, ok, "the destination root itself stays")
}

func TestWrite_ConflictAtDestinationPath(t *testing.T) {
	fsys := billy.NewMemory()
	testutil.WriteTree(t, fsys, "/work", map[string]string{"a.txt": "a"})
	require.NoError(t, fsys.WriteFile("/out", []byte("a file in the way"), 0o644))

	w, err := newLocalDestination(t, fsys, "/out").NewWriter()
	require.NoError(t, err)

	_, err = w.Write(&copybara.TransformResult{Workdir: "/work"}, console.Nop())
	require.Error(t, err)
	assert.True(t, IsDestinationConflict(err))

	var fe *Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "create", fe.Op)
	assert.Equal(t, "/out", fe.Path)
}

func TestWrite_ConflictAtAncestor(t *testing.T) {
	fsys := billy.NewMemory()
	testutil.WriteTree(t, fsys, "/work", map[string]string{"a.txt": "a"})
	require.NoError(t, fsys.WriteFile("/out", []byte("a file in the way"), 0o644))

	w, err := newLocalDestination(t, fsys, "/out/nested/deep").NewWriter()
	require.NoError(t, err)

	_, err = w.Write(&copybara.TransformResult{Workdir: "/work"}, console.Nop())
	require.Error(t, err)
	assert.True(t, IsDestinationConflict(err))

	var fe *Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "/out", fe.Path, "the error names the offending ancestor")

	ok, err := fsys.Exists("/out/nested")
	require.NoError(t, err)
	assert.False(t, ok, "nothing is created when an ancestor conflicts")
}

func TestWrite_InvalidExclusionPattern(t *testing.T) {
	fsys := billy.NewMemory()
	testutil.WriteTree(t, fsys, "/work", map[string]string{"a.txt": "a"})

	w, err := newLocalDestination(t, fsys, "/out").NewWriter()
	require.NoError(t, err)

	_, err = w.Write(&copybara.TransformResult{
		Workdir:                  "/work",
		ExcludedDestinationPaths: []string{"a["},
	}, console.Nop())
	require.Error(t, err)
	assert.ErrorIs(t, err, doublestar.ErrBadPattern)

	var fe *Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "clean", fe.Op)
}

func TestDestination_Labels(t *testing.T) {
	dst := newLocalDestination(t, billy.NewMemory(), "/out")

	ref, err := dst.PreviousRef("any-label")
	require.NoError(t, err)
	assert.Empty(t, ref, "folder destinations keep no history")

	_, err = dst.LabelNameWhenOrigin()
	assert.ErrorIs(t, err, copybara.ErrLabelsNotSupported)
}
