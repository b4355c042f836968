// Package logging sets up file-backed logging. The terminal is owned by the
// renderer, so log output never touches stdout or stderr while a game runs.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New returns a logger writing to a size-rotated file at path. An empty
// path discards all output.
func New(path string) *log.Logger {
	var out io.Writer = io.Discard
	if path != "" {
		out = &lumberjack.Logger{
			Filename:   path,
			MaxSize:    5, // megabytes
			MaxBackups: 2,
			MaxAge:     14, // days
		}
	}
	return log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
	})
}
