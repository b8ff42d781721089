package folder

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/luckydonald/copybara"
	"github.com/luckydonald/copybara/console"
	"github.com/luckydonald/copybara/fs"
	"github.com/luckydonald/copybara/fsutil"
)

// Destination writes migration output into a local directory.
// The zero value is not usable; construct with New.
type Destination struct {
	fsys        fs.Filesystem
	localFolder string
}

var _ copybara.Destination = (*Destination)(nil)

// LocalFolder returns the resolved directory this destination writes
// into.
func (d *Destination) LocalFolder() string {
	return d.localFolder
}

// NewWriter implements copybara.Destination.
//
//nolint:ireturn // copybara.Destination dictates the interface return.
func (d *Destination) NewWriter() (copybara.Writer, error) {
	return &writer{
		fsys: d.fsys,
		dst:  d.localFolder,
	}, nil
}

// PreviousRef implements copybara.Destination. Folder destinations
// keep no history, so there is never a previous reference.
func (d *Destination) PreviousRef(labelName string) (string, error) {
	return "", nil
}

// LabelNameWhenOrigin implements copybara.Destination.
func (d *Destination) LabelNameWhenOrigin() (string, error) {
	return "", copybara.ErrLabelsNotSupported
}

// writer performs one three-phase write: ensure the destination
// directory exists, clear previous output, copy the workdir in.
// A writer is single-use and not safe for concurrent calls; distinct
// destinations are independent.
type writer struct {
	fsys fs.Filesystem
	dst  string
}

// Write implements copybara.Writer. There is no rollback: a failure in
// any phase aborts and leaves the destination in its partial state,
// with the error naming the phase and path.
func (w *writer) Write(res *copybara.TransformResult, c console.Console) (*copybara.WriteResult, error) {
	start := time.Now()

	c.Progress(fmt.Sprintf("FolderDestination: creating %s", w.dst))
	if err := w.ensureDirectory(); err != nil {
		return nil, err
	}

	keep, err := fsutil.NewGlobMatcher(w.dst, res.ExcludedDestinationPaths)
	if err != nil {
		return nil, &Error{Op: "clean", Path: w.dst, Err: err}
	}

	c.Progress(fmt.Sprintf("FolderDestination: deleting previous data from %s", w.dst))
	deleted, err := fsutil.DeleteRecursively(w.fsys, w.dst, keep)
	if err != nil {
		return nil, &Error{Op: "clean", Path: w.dst, Err: err}
	}

	c.Progress(fmt.Sprintf("FolderDestination: Copying contents of the workdir to %s", w.dst))
	copied, err := fsutil.CopyRecursively(w.fsys, res.Workdir, w.dst)
	if err != nil {
		return nil, &Error{Op: "copy", Path: w.dst, Err: err}
	}

	return &copybara.WriteResult{
		FilesCopied:    copied,
		FilesDeleted:   deleted.Deleted,
		FilesPreserved: deleted.Preserved,
		Duration:       time.Since(start),
	}, nil
}

// ensureDirectory creates the destination directory. Creating an
// already existing directory is a no-op, so repeated writes reuse it.
// An existing non-directory at the destination or any ancestor is
// ErrDestinationConflict naming the offending path. The conflict walk
// runs before MkdirAll: not every filesystem fails the create when an
// ancestor is a regular file, and a conflict must surface before
// anything is written.
func (w *writer) ensureDirectory() error {
	if conflict := w.findConflict(); conflict != "" {
		return &Error{Op: "create", Path: conflict, Err: ErrDestinationConflict}
	}
	if err := w.fsys.MkdirAll(w.dst, 0o755); err != nil {
		// A conflict can still appear between the walk and the create.
		if conflict := w.findConflict(); conflict != "" {
			return &Error{Op: "create", Path: conflict, Err: ErrDestinationConflict}
		}
		return &Error{Op: "create", Path: w.dst, Err: err}
	}
	return nil
}

// findConflict walks from the destination towards the filesystem root
// looking for an existing entry that is not a directory.
func (w *writer) findConflict() string {
	p := w.dst
	for {
		info, err := w.fsys.Lstat(p)
		if err == nil && !info.IsDir() {
			return p
		}
		parent := filepath.Dir(p)
		if parent == p {
			return ""
		}
		p = parent
	}
}
