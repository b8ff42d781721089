package fs

import "io/fs"

// File is an open file handle. Implementations behave like their
// standard-library counterparts; in particular Read returns io.EOF
// unwrapped so callers can loop on it.
type File interface {
	Close() error
	Name() string
	Read(p []byte) (n int, err error)
	ReadAt(p []byte, off int64) (n int, err error)
	Seek(offset int64, whence int) (int64, error)
	Stat() (fs.FileInfo, error)
	Write(p []byte) (n int, err error)
}
