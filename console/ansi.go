package console

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// ansi writes severity-colored prefixes: green progress, cyan info,
// yellow warnings, red errors. Whether colors actually render is
// governed by the color package (NO_COLOR, terminal detection,
// color.NoColor).
type ansi struct {
	w        io.Writer
	progress *color.Color
	info     *color.Color
	warn     *color.Color
	err      *color.Color
}

// NewAnsi returns a Console writing colored "LEVEL: message" lines
// to w.
func NewAnsi(w io.Writer) Console {
	return &ansi{
		w:        w,
		progress: color.New(color.FgGreen),
		info:     color.New(color.FgCyan),
		warn:     color.New(color.FgYellow),
		err:      color.New(color.FgRed),
	}
}

func (c *ansi) Progress(msg string) { c.line(c.progress, "PROGRESS", msg) }
func (c *ansi) Info(msg string)     { c.line(c.info, "INFO", msg) }
func (c *ansi) Warn(msg string)     { c.line(c.warn, "WARN", msg) }
func (c *ansi) Error(msg string)    { c.line(c.err, "ERROR", msg) }

func (c *ansi) line(col *color.Color, level, msg string) {
	fmt.Fprintf(c.w, "%s: %s\n", col.Sprint(level), msg)
}
