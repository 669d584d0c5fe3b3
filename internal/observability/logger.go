package observability

import (
	"log/slog"
	"os"
)

// NewLogger returns a JSON slog.Logger tagged with the service name.
func NewLogger() *slog.Logger {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	return slog.New(h).With("service", "quick-hire")
}
