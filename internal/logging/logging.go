// Package logging builds the diagnostic channel: structured lines on
// stderr, teed into a rotating file so transcripts and failures remain
// observable when the tool is driven by a hotkey. Stdout stays reserved
// for command payloads.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// New returns the process logger. When dir is empty only stderr is used.
func New(dir string) *slog.Logger {
	var w io.Writer = os.Stderr

	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err == nil {
			rotator := &lumberjack.Logger{
				Filename:   filepath.Join(dir, "dictate.log"),
				MaxSize:    10, // MB
				MaxBackups: 3,
				MaxAge:     28, // days
			}
			w = io.MultiWriter(os.Stderr, rotator)
		}
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
}
