// Package logger provides the structured slog logger used across the
// service. All logs are written in JSON format.
package logger

import (
	"io"
	"log/slog"
)

// New creates a JSON slog.Logger writing to w at the given level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}
