// Package config provides the explicit configuration structure for the
// session driver and CLI layers. The core never reads ambient state;
// everything it needs arrives through Options at construction time.
package config

import (
	"log/slog"
	"time"
)

// Defaults applied by Normalize when a field is unset.
const (
	// DefaultStartupTimeout bounds the wait for the first prompt.
	DefaultStartupTimeout = 20 * time.Second

	// DefaultCommandTimeout bounds the prompt-wait after each submitted line.
	DefaultCommandTimeout = 60 * time.Second

	// DefaultGracefulTimeout bounds the wait for natural exit after the
	// quit command is sent during Stop.
	DefaultGracefulTimeout = 5 * time.Second

	// DefaultPollInterval is the queue poll granularity inside prompt-wait.
	// Timeout overshoot is bounded by this value.
	DefaultPollInterval = 50 * time.Millisecond

	// DefaultTailWindow is how many trailing bytes of the rolling buffer
	// are re-tested against the prompt pattern after each append. Large
	// enough to contain any numbered prompt, cheap to re-scan.
	DefaultTailWindow = 64

	// DefaultQuitCommand is the line sent to request a graceful shutdown.
	DefaultQuitCommand = ")quit"
)

// Options configures a FriCAS session.
type Options struct {
	// ExePath is the explicit path to the FriCAS binary. If empty,
	// discovery searches PATH and common install locations.
	ExePath string

	// Args are extra arguments passed to the FriCAS process.
	Args []string

	// Env provides additional environment variables for the process,
	// merged over the inherited environment.
	Env map[string]string

	// Cwd is the working directory for the process. Empty means inherit.
	Cwd string

	// StartupTimeout bounds Start()'s wait for the initial prompt.
	StartupTimeout time.Duration

	// CommandTimeout bounds each request's wait for the next prompt.
	CommandTimeout time.Duration

	// GracefulTimeout bounds Stop()'s wait for natural exit.
	GracefulTimeout time.Duration

	// PollInterval is the sleep-poll granularity of prompt-wait.
	PollInterval time.Duration

	// TailWindow is the number of trailing buffer bytes tested against
	// the prompt pattern.
	TailWindow int

	// QuitCommand is the engine command requesting a clean exit.
	QuitCommand string

	// Logger receives debug and operational output. Nil means silent.
	Logger *slog.Logger
}

// Normalize returns a copy of o with defaults filled in for zero fields.
func (o *Options) Normalize() *Options {
	out := *o

	if out.StartupTimeout <= 0 {
		out.StartupTimeout = DefaultStartupTimeout
	}

	if out.CommandTimeout <= 0 {
		out.CommandTimeout = DefaultCommandTimeout
	}

	if out.GracefulTimeout <= 0 {
		out.GracefulTimeout = DefaultGracefulTimeout
	}

	if out.PollInterval <= 0 {
		out.PollInterval = DefaultPollInterval
	}

	if out.TailWindow <= 0 {
		out.TailWindow = DefaultTailWindow
	}

	if out.QuitCommand == "" {
		out.QuitCommand = DefaultQuitCommand
	}

	return &out
}
