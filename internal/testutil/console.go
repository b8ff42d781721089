package testutil

import "strings"

// RecordingConsole records every console message it receives, tagged
// with its severity. It satisfies the console.Console interface.
type RecordingConsole struct {
	Messages []string
}

// Progress records a progress message.
func (c *RecordingConsole) Progress(msg string) { c.record("PROGRESS", msg) }

// Info records an informational message.
func (c *RecordingConsole) Info(msg string) { c.record("INFO", msg) }

// Warn records a warning message.
func (c *RecordingConsole) Warn(msg string) { c.record("WARN", msg) }

// Error records an error message.
func (c *RecordingConsole) Error(msg string) { c.record("ERROR", msg) }

func (c *RecordingConsole) record(level, msg string) {
	c.Messages = append(c.Messages, level+": "+msg)
}

// Contains reports whether any recorded message contains substr.
func (c *RecordingConsole) Contains(substr string) bool {
	for _, m := range c.Messages {
		if strings.Contains(m, substr) {
			return true
		}
	}
	return false
}
