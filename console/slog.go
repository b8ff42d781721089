package console

import "log/slog"

// slogConsole forwards console traffic to a structured logger so host
// applications keep a single log stream.
type slogConsole struct {
	log *slog.Logger
}

// NewSlog returns a Console forwarding to log. Progress and Info map
// to the Info level (progress lines gain a kind=progress attribute),
// Warn and Error to their slog counterparts.
func NewSlog(log *slog.Logger) Console {
	return &slogConsole{log: log}
}

func (c *slogConsole) Progress(msg string) { c.log.Info(msg, "kind", "progress") }
func (c *slogConsole) Info(msg string)     { c.log.Info(msg) }
func (c *slogConsole) Warn(msg string)     { c.log.Warn(msg) }
func (c *slogConsole) Error(msg string)    { c.log.Error(msg) }
