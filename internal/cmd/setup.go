package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	fricas "github.com/Foadsf/fricas-pro-cli"
	"github.com/Foadsf/fricas-pro-cli/internal/config"
	"github.com/Foadsf/fricas-pro-cli/internal/ui"
)

// settings is the merged runtime configuration. Precedence: command
// line flags, then the FRICAS_EXE environment variable, then the
// config file, then engine discovery and defaults.
type settings struct {
	exePath  string
	args     []string
	startup  time.Duration
	command  time.Duration
	graceful time.Duration
	raw      bool
	color    bool
	logger   *slog.Logger
}

func loadSettings() (*settings, error) {
	s := &settings{raw: flagRaw}

	var file *config.File

	if flagConfig != "" {
		f, err := config.LoadFile(flagConfig)
		if err != nil {
			return nil, err
		}

		file = f
	}

	o := &config.Options{}
	if file != nil {
		file.Apply(o)
	}

	if flagDebug {
		s.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}

	exe := flagFricasPath
	if exe == "" {
		exe = os.Getenv("FRICAS_EXE")
	}

	if exe == "" {
		exe = o.ExePath
	}

	path, err := fricas.Discover(exe, s.logger)
	if err != nil {
		return nil, err
	}

	s.exePath = path
	s.args = o.Args
	s.startup = o.StartupTimeout
	s.graceful = o.GracefulTimeout

	s.command = o.CommandTimeout
	if flagTimeout > 0 {
		s.command = time.Duration(flagTimeout * float64(time.Second))
	}

	if file != nil && file.Output.Raw {
		s.raw = true
	}

	s.color = !flagNoColor && ui.ShouldUseColor()
	if file != nil && file.Output.NoColor {
		s.color = false
	}

	return s, nil
}

func (s *settings) sessionOptions() []fricas.Option {
	opts := []fricas.Option{fricas.WithExePath(s.exePath)}

	if len(s.args) > 0 {
		opts = append(opts, fricas.WithArgs(s.args...))
	}

	if s.startup > 0 {
		opts = append(opts, fricas.WithStartupTimeout(s.startup))
	}

	if s.command > 0 {
		opts = append(opts, fricas.WithCommandTimeout(s.command))
	}

	if s.graceful > 0 {
		opts = append(opts, fricas.WithGracefulTimeout(s.graceful))
	}

	if s.logger != nil {
		opts = append(opts, fricas.WithLogger(s.logger))
	}

	return opts
}

func (s *settings) palette() *ui.Palette {
	return ui.NewPalette(s.color)
}

// runWithSession resolves settings, starts an engine session with
// interrupt handling, and runs fn against it. Ctrl-C cancels the
// context, which surfaces as context.Canceled to the exit code
// mapping.
func runWithSession(fn func(ctx context.Context, set *settings, sess *fricas.Session) error) error {
	set, err := loadSettings()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return fricas.WithSession(ctx, func(sess *fricas.Session) error {
		return fn(ctx, set, sess)
	}, set.sessionOptions()...)
}
