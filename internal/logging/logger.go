package logging

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// Setup installs the global slog logger. Format "text" gets a colored
// console handler for development; anything else gets JSON to stdout.
func Setup(format string) {
	slog.SetDefault(slog.New(NewHandler(format)))
}

// NewHandler builds the base handler for the given format. Exposed so the
// database log handler can be fanned in after the DB connection exists.
func NewHandler(format string) slog.Handler {
	if format == "text" {
		return tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: time.Kitchen,
		})
	}
	return slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
}
