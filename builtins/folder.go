package builtins

import (
	"fmt"
	"time"

	"github.com/luckydonald/copybara/console"
	"github.com/luckydonald/copybara/folder"
	"github.com/luckydonald/copybara/fs"
)

// FolderOptions carries the host-supplied collaborators and overrides
// the folder module closes over. Filesystem is required; the zero
// value of every other field means "use the folder package default".
type FolderOptions struct {
	// Filesystem receives the destination's writes. Required.
	Filesystem fs.Filesystem

	// LocalFolder, when set, pins every destination to this directory.
	// This is where a host wires its --folder-dir style flag.
	LocalFolder string

	// Cwd is the base for resolving relative paths. Empty means the
	// process working directory.
	Cwd string

	// DefaultRoot overrides where generated destinations are placed.
	DefaultRoot string

	// Console receives resolution notices. nil discards them.
	Console console.Console

	// Clock is the time source for generated folder names. nil means
	// time.Now.
	Clock func() time.Time
}

// Folder returns the module exposing folder destinations to the
// evaluator: destination(config_name) resolves a destination according
// to opts and the given config name.
func Folder(opts FolderOptions) Module {
	return Module{
		Name: "folder",
		Doc:  "local directory destinations",
		Funcs: map[string]Func{
			"destination": {
				Name: "destination",
				Doc:  "returns a destination that writes into a local folder",
				Impl: func(args []any) (any, error) {
					return folderDestination(opts, args)
				},
			},
		},
	}
}

func folderDestination(opts FolderOptions, args []any) (any, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("destination: expected 1 argument (config_name), got %d", len(args))
	}
	name, ok := args[0].(string)
	if !ok {
		return nil, fmt.Errorf("destination: config_name must be a string, got %T", args[0])
	}
	if opts.Filesystem == nil {
		return nil, fmt.Errorf("destination: no filesystem configured")
	}

	var fopts []folder.Option
	if opts.LocalFolder != "" {
		fopts = append(fopts, folder.WithLocalFolder(opts.LocalFolder))
	}
	if opts.Cwd != "" {
		fopts = append(fopts, folder.WithCwd(opts.Cwd))
	}
	if opts.DefaultRoot != "" {
		fopts = append(fopts, folder.WithDefaultRoot(opts.DefaultRoot))
	}
	if opts.Console != nil {
		fopts = append(fopts, folder.WithConsole(opts.Console))
	}
	if opts.Clock != nil {
		fopts = append(fopts, folder.WithClock(opts.Clock))
	}
	return folder.New(opts.Filesystem, name, fopts...)
}
