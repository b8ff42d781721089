// Package console is the reporting channel destinations talk to while
// they work. It is a narrow interface so hosts can route messages to a
// terminal, a structured logger or a test recorder.
package console

import (
	"fmt"
	"io"
)

// Console receives human-readable status messages. Implementations
// must be safe for use from a single writer goroutine; they do not
// need to be safe for concurrent use.
type Console interface {
	// Progress reports a phase transition or status line.
	Progress(msg string)
	// Info reports an informational notice.
	Info(msg string)
	// Warn reports a recoverable oddity.
	Warn(msg string)
	// Error reports a failure the caller is about to surface.
	Error(msg string)
}

// plain writes prefixed, uncolored lines.
type plain struct {
	w io.Writer
}

// NewPlain returns a Console writing uncolored "LEVEL: message" lines
// to w.
func NewPlain(w io.Writer) Console {
	return &plain{w: w}
}

func (c *plain) Progress(msg string) { c.line("PROGRESS", msg) }
func (c *plain) Info(msg string)     { c.line("INFO", msg) }
func (c *plain) Warn(msg string)     { c.line("WARN", msg) }
func (c *plain) Error(msg string)    { c.line("ERROR", msg) }

func (c *plain) line(level, msg string) {
	fmt.Fprintf(c.w, "%s: %s\n", level, msg)
}

// nop discards everything.
type nop struct{}

// Nop returns a Console that discards all messages.
func Nop() Console {
	return nop{}
}

func (nop) Progress(string) {}
func (nop) Info(string)     {}
func (nop) Warn(string)     {}
func (nop) Error(string)    {}
