package copybara

import (
	"errors"
	"time"

	"github.com/luckydonald/copybara/console"
)

// TransformResult is the hand-off from the workflow engine to a
// destination writer: a finished output tree plus the destination paths
// that must survive the write.
type TransformResult struct {
	// Workdir is the root of the output tree. The tree is read-only and
	// exclusively owned by the caller for the duration of the write.
	Workdir string

	// ExcludedDestinationPaths are glob patterns, resolved relative to
	// the destination root, naming paths that the writer must preserve.
	// The slice must not change while a write is in flight.
	ExcludedDestinationPaths []string
}

// WriteResult reports a fully completed write. A writer never returns a
// partial result: on any failure the destination state is undefined and
// the caller must treat the run as failed from scratch.
type WriteResult struct {
	// FilesCopied is the number of files and symlinks written from the
	// output tree into the destination.
	FilesCopied int

	// FilesDeleted is the number of pre-existing entries removed from
	// the destination during cleaning.
	FilesDeleted int

	// FilesPreserved is the number of pre-existing entries kept because
	// they matched an excluded destination path.
	FilesPreserved int

	// Duration is the wall-clock time of the whole write.
	Duration time.Duration
}

// Writer performs one synchronization pass against a destination.
//
// A writer is single-use per run and fully synchronous: it blocks until
// the write completes or fails and offers no cancellation. Concurrent
// writes against distinct destination roots are independent; writes
// against the same root must be serialized by the caller.
type Writer interface {
	Write(res *TransformResult, c console.Console) (*WriteResult, error)
}

// Destination is a place migrated code can be written to.
type Destination interface {
	// NewWriter returns a writer for a single migration run.
	NewWriter() (Writer, error)

	// PreviousRef returns the last reference migrated to this
	// destination under the given label, or "" when the destination
	// does not track references.
	PreviousRef(labelName string) (string, error)

	// LabelNameWhenOrigin returns the label exposed when this
	// destination is read back as an origin. Destinations without
	// reference tracking return ErrLabelsNotSupported.
	LabelNameWhenOrigin() (string, error)
}

// ErrLabelsNotSupported is returned by destinations that cannot act as a
// labeled origin.
var ErrLabelsNotSupported = errors.New("destination does not support labels")
