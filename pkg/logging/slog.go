package logging

import (
	"log/slog"
	"os"
)

// New returns the process-wide JSON logger with the service name attached to
// every record.
func New(service string) *slog.Logger {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return slog.New(h).With("service", service)
}
