// Package copybara provides the destination-side primitives of a
// config-driven code migration pipeline: a folder destination that
// synchronizes a computed output tree into a local directory, and a
// type-checked format primitive exposed to migration configurations.
//
// The package itself only defines the contracts between the migration
// workflow and a destination. Concrete behavior lives in the
// subpackages:
//
//   - folder: resolves and writes a local folder destination
//   - format: validates printf-style templates before formatting
//   - fsutil: filtered recursive delete/copy over an abstract filesystem
//   - fs, fs/billy: the filesystem abstraction and its go-billy provider
//   - console: the progress/notice sink handed to long-running operations
//   - builtins: registration of these primitives for an embedded
//     configuration-language evaluator
//
// A workflow produces a finished tree in a scratch directory, then asks a
// Destination for a Writer and hands it the tree together with the
// destination paths that must survive the write:
//
//	dest, err := folder.New(fsys, "my-project")
//	if err != nil {
//	    return err
//	}
//	w, err := dest.NewWriter()
//	if err != nil {
//	    return err
//	}
//	result, err := w.Write(&copybara.TransformResult{
//	    Workdir:                  workdir,
//	    ExcludedDestinationPaths: []string{".git/**"},
//	}, console.NewAnsi(os.Stderr))
//
// All filesystem access goes through fs.Filesystem, so the whole write
// path can run against an in-memory filesystem in tests.
package copybara
