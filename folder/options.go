package folder

import (
	"time"

	"github.com/luckydonald/copybara/console"
)

// config collects the knobs New accepts before resolution runs.
type config struct {
	localFolder string
	cwd         string
	defaultRoot string
	clock       func() time.Time
	console     console.Console
}

// Option configures destination resolution.
// Options follow the functional options pattern for clean, composable configuration.
type Option func(*config)

// WithLocalFolder pins the destination to the given directory instead
// of a generated path under the default root. A relative path is
// resolved against the configured working directory.
func WithLocalFolder(path string) Option {
	return func(c *config) {
		c.localFolder = path
	}
}

// WithCwd sets the base directory for resolving relative paths.
// Default is the process working directory.
func WithCwd(dir string) Option {
	return func(c *config) {
		c.cwd = dir
	}
}

// WithDefaultRoot overrides the directory generated destinations are
// placed under. Default is "copybara/out" below the working directory.
func WithDefaultRoot(dir string) Option {
	return func(c *config) {
		c.defaultRoot = dir
	}
}

// WithClock injects the time source used to name generated folders.
// Default is time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		if now != nil {
			c.clock = now
		}
	}
}

// WithConsole sets the console resolution notices are written to.
// Default is a console that discards everything.
func WithConsole(cons console.Console) Option {
	return func(c *config) {
		if cons != nil {
			c.console = cons
		}
	}
}
