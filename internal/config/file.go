package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// FileVersion is the current supported config file schema version.
const FileVersion = 1

// File is the on-disk TOML configuration. All fields are optional;
// zero values leave the corresponding Options field untouched.
type File struct {
	Version int `toml:"version"`

	Engine struct {
		Path string   `toml:"path"`
		Args []string `toml:"args"`
	} `toml:"engine"`

	Timeouts struct {
		StartupSeconds  float64 `toml:"startup_seconds"`
		CommandSeconds  float64 `toml:"command_seconds"`
		GracefulSeconds float64 `toml:"graceful_seconds"`
	} `toml:"timeouts"`

	Output struct {
		Raw     bool `toml:"raw"`
		NoColor bool `toml:"no_color"`
	} `toml:"output"`
}

// LoadFile reads and parses a TOML config file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if f.Version > FileVersion {
		return nil, fmt.Errorf("config %s: unsupported version %d (max %d)", path, f.Version, FileVersion)
	}

	return &f, nil
}

// Apply copies the file's non-zero settings onto o.
func (f *File) Apply(o *Options) {
	if f.Engine.Path != "" {
		o.ExePath = f.Engine.Path
	}

	if len(f.Engine.Args) > 0 {
		o.Args = f.Engine.Args
	}

	if f.Timeouts.StartupSeconds > 0 {
		o.StartupTimeout = secondsToDuration(f.Timeouts.StartupSeconds)
	}

	if f.Timeouts.CommandSeconds > 0 {
		o.CommandTimeout = secondsToDuration(f.Timeouts.CommandSeconds)
	}

	if f.Timeouts.GracefulSeconds > 0 {
		o.GracefulTimeout = secondsToDuration(f.Timeouts.GracefulSeconds)
	}
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
