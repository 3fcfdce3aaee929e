// Package logger configures the process-wide slog logger. User-facing output
// is printed by the cli package; slog carries diagnostics only.
package logger

import (
	"io"
	"log/slog"
)

// Setup installs a text handler on w as the default logger. Verbose enables
// debug records; otherwise only warnings and errors are emitted.
func Setup(w io.Writer, verbose bool) {
	opts := &slog.HandlerOptions{Level: slog.LevelWarn}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, opts)))
}
