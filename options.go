package fricas

import (
	"log/slog"
	"time"

	"github.com/Foadsf/fricas-pro-cli/internal/config"
)

// Option configures a Session using the functional options pattern.
type Option func(*config.Options)

// applyOptions applies functional options to a fresh Options struct.
func applyOptions(opts []Option) *config.Options {
	options := &config.Options{}
	for _, opt := range opts {
		opt(options)
	}

	return options
}

// WithExePath sets the path to the FriCAS binary. If not set, the
// session fails to start; use engine discovery to resolve a path
// first.
func WithExePath(path string) Option {
	return func(o *config.Options) {
		o.ExePath = path
	}
}

// WithArgs sets extra command-line arguments passed to the engine.
func WithArgs(args ...string) Option {
	return func(o *config.Options) {
		o.Args = args
	}
}

// WithEnv adds environment variables for the engine process on top of
// the inherited environment.
func WithEnv(env map[string]string) Option {
	return func(o *config.Options) {
		o.Env = env
	}
}

// WithCwd sets the working directory for the engine process.
func WithCwd(dir string) Option {
	return func(o *config.Options) {
		o.Cwd = dir
	}
}

// WithStartupTimeout bounds the wait for the first prompt after
// launch. Zero means the default (20s).
func WithStartupTimeout(d time.Duration) Option {
	return func(o *config.Options) {
		o.StartupTimeout = d
	}
}

// WithCommandTimeout bounds the wait for the prompt after each
// command. Zero means the default (60s).
func WithCommandTimeout(d time.Duration) Option {
	return func(o *config.Options) {
		o.CommandTimeout = d
	}
}

// WithGracefulTimeout bounds the wait for the engine to exit after
// the quit command before it is killed.
func WithGracefulTimeout(d time.Duration) Option {
	return func(o *config.Options) {
		o.GracefulTimeout = d
	}
}

// WithPollInterval sets how often the prompt detector re-checks
// accumulated output. Mostly useful to speed up tests.
func WithPollInterval(d time.Duration) Option {
	return func(o *config.Options) {
		o.PollInterval = d
	}
}

// WithQuitCommand overrides the line written to request a graceful
// shutdown. Defaults to ")quit".
func WithQuitCommand(cmd string) Option {
	return func(o *config.Options) {
		o.QuitCommand = cmd
	}
}

// WithLogger sets the logger for debug output.
// If not set, logging is disabled (silent operation).
func WithLogger(logger *slog.Logger) Option {
	return func(o *config.Options) {
		o.Logger = logger
	}
}
