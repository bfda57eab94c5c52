package fricas

import "github.com/Foadsf/fricas-pro-cli/internal/errors"

// FricasError is the marker interface implemented by every typed
// error this package returns.
type FricasError = errors.FricasError

// Typed errors. All carry enough context to act on: the timeout
// errors include whatever partial output the engine produced.
type (
	// EngineNotFoundError means no FriCAS binary was found in any
	// searched location.
	EngineNotFoundError = errors.EngineNotFoundError

	// LaunchError means the engine process could not be started.
	LaunchError = errors.LaunchError

	// StartupTimeoutError means the first prompt never appeared
	// within the startup timeout.
	StartupTimeoutError = errors.StartupTimeoutError

	// CommandTimeoutError means a command's prompt never appeared
	// within the command timeout.
	CommandTimeoutError = errors.CommandTimeoutError
)

// Sentinel errors.
var (
	ErrSessionNotStarted = errors.ErrSessionNotStarted
	ErrSessionStopped    = errors.ErrSessionStopped
	ErrInputFileNotFound = errors.ErrInputFileNotFound
)
