// Package fsutil provides glob-based path selection and recursive tree
// operations over a fs.Filesystem: selective deletion that keeps
// matched paths in place, and an overlay copy that cannot write outside
// its destination root.
package fsutil
