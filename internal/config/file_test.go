package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoadFile_AppliesOntoOptions(t *testing.T) {
	path := writeConfig(t, `
version = 1

[engine]
path = "/opt/fricas/bin/FRICASsys"

[timeouts]
startup_seconds = 30
command_seconds = 2.5

[output]
no_color = true
`)

	f, err := LoadFile(path)
	require.NoError(t, err)

	var opts Options
	f.Apply(&opts)

	assert.Equal(t, "/opt/fricas/bin/FRICASsys", opts.ExePath)
	assert.Equal(t, 30*time.Second, opts.StartupTimeout)
	assert.Equal(t, 2500*time.Millisecond, opts.CommandTimeout)
	assert.Zero(t, opts.GracefulTimeout, "unset timeout stays zero until Normalize")
	assert.True(t, f.Output.NoColor)
}

func TestLoadFile_RejectsFutureVersion(t *testing.T) {
	path := writeConfig(t, "version = 99\n")

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported version")
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestNormalize_FillsDefaults(t *testing.T) {
	opts := (&Options{}).Normalize()

	assert.Equal(t, DefaultStartupTimeout, opts.StartupTimeout)
	assert.Equal(t, DefaultCommandTimeout, opts.CommandTimeout)
	assert.Equal(t, DefaultGracefulTimeout, opts.GracefulTimeout)
	assert.Equal(t, DefaultPollInterval, opts.PollInterval)
	assert.Equal(t, DefaultTailWindow, opts.TailWindow)
	assert.Equal(t, ")quit", opts.QuitCommand)
}

func TestNormalize_KeepsExplicitValues(t *testing.T) {
	opts := (&Options{
		CommandTimeout: time.Second,
		TailWindow:     128,
		QuitCommand:    ")pquit",
	}).Normalize()

	assert.Equal(t, time.Second, opts.CommandTimeout)
	assert.Equal(t, 128, opts.TailWindow)
	assert.Equal(t, ")pquit", opts.QuitCommand)
}
