package folder

import (
	"errors"
	"fmt"
)

// Error represents a destination operation error with context about
// the operation that failed and the path involved.
type Error struct {
	// Op is the phase that failed (e.g. "create", "clean", "copy")
	Op string

	// Path is the filesystem path the failure is about (if applicable)
	Path string

	// Err is the underlying error
	Err error
}

// Error implements the error interface by providing a formatted error message.
func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("folder.%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("folder.%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error chaining support.
func (e *Error) Unwrap() error {
	return e.Err
}

// Sentinel errors for destination failures.
// These can be used with errors.Is() for error checking.
var (
	// ErrDestinationConflict indicates the resolved destination path or
	// one of its ancestors already exists as a non-directory.
	ErrDestinationConflict = errors.New("folder: destination conflict")
)

// IsDestinationConflict checks if an error indicates the destination
// collides with an existing non-directory entry.
// This is a convenience function that handles both sentinel errors and wrapped errors.
func IsDestinationConflict(err error) bool {
	return errors.Is(err, ErrDestinationConflict)
}
