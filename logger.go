package fricas

import (
	"io"
	"log/slog"
)

// NopLogger returns a logger whose output goes nowhere. It is the
// default for sessions created without WithLogger, so the driver stays
// quiet unless a caller opts in.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
