package fricas

import (
	"log/slog"

	"github.com/Foadsf/fricas-pro-cli/internal/engine"
	"github.com/Foadsf/fricas-pro-cli/internal/session"
)

// Session drives one FriCAS child process.
type Session = session.Session

// State describes a session's lifecycle position.
type State = session.State

// Session lifecycle states.
const (
	StateNotStarted = session.StateNotStarted
	StateRunning    = session.StateRunning
	StateStopped    = session.StateStopped
)

// New creates a session. The engine is not launched until Start (or
// the first Request, which starts it on demand).
func New(opts ...Option) *Session {
	return session.New(applyOptions(opts))
}

// Discover locates the FriCAS binary. An explicit non-empty exePath
// is used as-is (and verified to exist); otherwise PATH and common
// install locations are searched.
func Discover(exePath string, logger *slog.Logger) (string, error) {
	d := engine.NewDiscoverer(&engine.Config{
		ExePath: exePath,
		Logger:  logger,
	})

	return d.Discover()
}

// ExtractVersion pulls the identification lines out of a startup
// banner, dropping separators and advisory notices.
func ExtractVersion(banner string) string {
	return engine.ExtractVersion(banner)
}
