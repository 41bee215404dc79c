package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// NewLogger returns a slog logger writing JSON to stdout, tagged with the service name.
// Debug lowers the level so handler-level detail is emitted.
func NewLogger(service string, debug bool) *slog.Logger {
	return New(os.Stdout, service, debug)
}

// New is NewLogger with an explicit destination.
func New(w io.Writer, service string, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{AddSource: true, Level: level})
	return slog.New(handler).With(slog.String("service", service))
}

// WithRequestID attaches a request identifier to the logger context.
func WithRequestID(_ context.Context, logger *slog.Logger, requestID string) *slog.Logger {
	if requestID == "" {
		return logger
	}
	return logger.With(slog.String("requestId", requestID))
}
