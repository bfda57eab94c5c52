package errors

import (
	"errors"
	"fmt"
	"time"
)

// FricasError is the base interface for all session driver errors.
type FricasError interface {
	error
	IsFricasError() bool
}

// Compile-time verification that all error types implement FricasError.
var (
	_ FricasError = (*EngineNotFoundError)(nil)
	_ FricasError = (*LaunchError)(nil)
	_ FricasError = (*StartupTimeoutError)(nil)
	_ FricasError = (*CommandTimeoutError)(nil)
)

// Sentinel errors for commonly checked conditions.
var (
	// ErrSessionNotStarted indicates an operation that requires a running
	// session was attempted before Start().
	ErrSessionNotStarted = errors.New("session not started")

	// ErrSessionStopped indicates the session has been stopped.
	ErrSessionStopped = errors.New("session stopped")

	// ErrInputFileNotFound indicates a .input file passed to the file
	// operation does not exist.
	ErrInputFileNotFound = errors.New("input file not found")
)

// EngineNotFoundError indicates the FriCAS binary was not found.
type EngineNotFoundError struct {
	SearchedPaths []string
}

func (e *EngineNotFoundError) Error() string {
	return fmt.Sprintf("FriCAS executable not found in: %v", e.SearchedPaths)
}

// IsFricasError implements FricasError.
func (e *EngineNotFoundError) IsFricasError() bool { return true }

// LaunchError indicates the FriCAS process could not be spawned or its
// standard streams are unusable. Fatal, no retry.
type LaunchError struct {
	Err error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to launch FriCAS: %v", e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// IsFricasError implements FricasError.
func (e *LaunchError) IsFricasError() bool { return true }

// StartupTimeoutError indicates no initial prompt appeared within the
// startup deadline. Fatal for this session instance; the caller may
// retry with a fresh session.
type StartupTimeoutError struct {
	Timeout time.Duration
	// Partial holds whatever output was collected before the deadline,
	// preserved for diagnosis.
	Partial string
}

func (e *StartupTimeoutError) Error() string {
	return fmt.Sprintf("FriCAS did not present a prompt within %v", e.Timeout)
}

// IsFricasError implements FricasError.
func (e *StartupTimeoutError) IsFricasError() bool { return true }

// CommandTimeoutError indicates no prompt appeared after a submitted
// line within its deadline. The specific request failed; whether the
// session is still usable is left to the caller.
type CommandTimeoutError struct {
	// Line is the offending input line.
	Line    string
	Timeout time.Duration
	// Partial holds the bytes collected before the deadline expired,
	// preserved for diagnosis.
	Partial string
}

func (e *CommandTimeoutError) Error() string {
	return fmt.Sprintf("timed out after %v waiting for prompt after sending: %s", e.Timeout, e.Line)
}

// IsFricasError implements FricasError.
func (e *CommandTimeoutError) IsFricasError() bool { return true }
