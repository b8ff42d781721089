// Package folder implements a destination that writes a migration's
// output tree into a local directory. Repeated writes against the same
// directory converge on the workdir contents: previous output is
// cleared first, minus exclusions, then the workdir is copied in.
//
// A destination is resolved once with New, either to a caller-chosen
// directory or to a generated <root>/<name>/<timestamp> path, and
// hands out writers from then on.
//
// Example usage:
//
//	dst, err := folder.New(billy.NewBaseOS(), "my-config",
//	    folder.WithConsole(console.NewAnsi(os.Stderr)))
//	if err != nil {
//	    return err
//	}
//	w, err := dst.NewWriter()
//	if err != nil {
//	    return err
//	}
//	result, err := w.Write(&copybara.TransformResult{Workdir: workdir}, c)
package folder
