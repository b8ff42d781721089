package folder

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/luckydonald/copybara/console"
	"github.com/luckydonald/copybara/fs"
)

// DefaultRootDir is the path below the working directory that
// generated destinations default to.
const DefaultRootDir = "copybara/out"

// timestampLayout names generated folders down to the second. Two
// resolutions of the same config name within one second collide; the
// writer then reuses the directory, which is the documented behavior
// for rapid successive runs.
const timestampLayout = "2006_01_02_15_04_05"

var nonAlphanumeric = regexp.MustCompile(`[^A-Za-z0-9]`)

// New resolves the directory a destination writes into and returns a
// Destination bound to fsys. With WithLocalFolder the caller's choice
// wins, resolved against the working directory when relative. Without
// it the destination is generated as
//
//	<defaultRoot>/<sanitized config name>/<timestamp>
//
// and a notice naming the chosen folder is written to the console.
// Sanitizing strips every rune outside A-Za-z0-9; a name with nothing
// left contributes no path segment at all.
//
// Resolution is pure path computation. Nothing is created or checked
// on the filesystem until a writer runs.
func New(fsys fs.Filesystem, configName string, opts ...Option) (*Destination, error) {
	cfg := config{
		clock:   time.Now,
		console: console.Nop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.cwd == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, &Error{Op: "resolve", Err: err}
		}
		cfg.cwd = wd
	}

	localFolder := cfg.localFolder
	switch {
	case localFolder == "":
		root := cfg.defaultRoot
		if root == "" {
			root = filepath.Join(cfg.cwd, DefaultRootDir)
		}
		stamp := cfg.clock().Format(timestampLayout)
		localFolder = filepath.Join(root, sanitizeName(configName), stamp)
		cfg.console.Info(fmt.Sprintf(
			"Using folder '%s' in default root. Use --folder-dir to override.", localFolder))
	case !filepath.IsAbs(localFolder):
		localFolder = filepath.Join(cfg.cwd, localFolder)
	}

	return &Destination{
		fsys:        fsys,
		localFolder: localFolder,
	}, nil
}

// sanitizeName reduces a config name to a single safe path segment.
func sanitizeName(name string) string {
	return nonAlphanumeric.ReplaceAllString(name, "")
}
