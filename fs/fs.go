package fs

import (
	"os"
	"path/filepath"
)

// Filesystem is the surface the destination write path needs from a
// filesystem. It is deliberately small: enough to walk, clean and
// rebuild a directory tree, nothing more. Providers live in subpackages
// (fs/billy wraps go-billy, backed by the OS or by memory).
//
// Paths are provider-native; the go-billy provider uses forward slashes
// and accepts absolute paths.
type Filesystem interface {
	// Create creates or truncates the named file for writing.
	Create(name string) (File, error)

	// Exists reports whether the path exists, distinguishing
	// "not there" from a failing stat.
	Exists(path string) (bool, error)

	// Join joins path elements using the provider's separator.
	Join(elem ...string) string

	// Lstat stats the path without following a trailing symlink.
	Lstat(name string) (os.FileInfo, error)

	// MkdirAll creates the directory and any missing ancestors.
	// It is a no-op if the directory already exists.
	MkdirAll(path string, perm os.FileMode) error

	// Open opens the named file for reading.
	Open(name string) (File, error)

	// OpenFile opens the named file with the given flag and permission.
	OpenFile(name string, flag int, perm os.FileMode) (File, error)

	// ReadDir lists a directory. Order is provider-defined; callers
	// must not depend on it.
	ReadDir(dirname string) ([]os.FileInfo, error)

	// ReadFile reads the whole named file.
	ReadFile(path string) ([]byte, error)

	// Readlink returns the target of a symlink.
	Readlink(name string) (string, error)

	// Remove removes a file or an empty directory.
	Remove(name string) error

	// Stat stats the path, following symlinks.
	Stat(name string) (os.FileInfo, error)

	// Symlink creates newname as a symlink to oldname.
	Symlink(oldname, newname string) error

	// Walk walks the tree rooted at root in lexical order, calling
	// walkFn for every file and directory. Symlinks are visited but
	// not followed.
	Walk(root string, walkFn filepath.WalkFunc) error

	// WriteFile writes data to the named file, creating it if needed.
	WriteFile(filename string, data []byte, perm os.FileMode) error
}
