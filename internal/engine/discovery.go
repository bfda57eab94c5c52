// Package engine locates the FriCAS binary and extracts engine
// metadata from its startup banner.
package engine

import (
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/Foadsf/fricas-pro-cli/internal/errors"
)

// binaryNames are tried in order when searching PATH.
var binaryNames = []string{"FRICASsys", "fricas"}

// Config holds configuration for engine discovery. No ambient lookups
// happen here: if an environment variable should influence discovery,
// the caller resolves it and fills ExePath.
type Config struct {
	// ExePath is an explicit binary path that skips all searching.
	ExePath string

	// Logger is optional; nil means silent.
	Logger *slog.Logger
}

// Discoverer locates the FriCAS binary.
type Discoverer interface {
	// Discover returns the path to the FriCAS binary or an
	// EngineNotFoundError listing every location searched.
	Discover() (string, error)
}

type discoverer struct {
	cfg *Config
	log *slog.Logger
}

// Compile-time verification that discoverer implements Discoverer.
var _ Discoverer = (*discoverer)(nil)

// NewDiscoverer creates a discoverer with the given configuration.
func NewDiscoverer(cfg *Config) Discoverer {
	if cfg == nil {
		cfg = &Config{}
	}

	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &discoverer{
		cfg: cfg,
		log: log.With("component", "discovery"),
	}
}

// Discover locates the FriCAS binary.
func (d *discoverer) Discover() (string, error) {
	// Explicit path: use it and only it.
	if d.cfg.ExePath != "" {
		d.log.Debug("Using explicit engine path", "exe_path", d.cfg.ExePath)

		if _, err := os.Stat(d.cfg.ExePath); err == nil {
			return d.cfg.ExePath, nil
		}

		return "", &errors.EngineNotFoundError{SearchedPaths: []string{d.cfg.ExePath}}
	}

	searchedPaths := make([]string, 0, 8)

	for _, name := range binaryNames {
		d.log.Debug("Searching PATH", "name", name)

		if path, err := exec.LookPath(name); err == nil {
			d.log.Debug("Found engine in PATH", "path", path)

			return path, nil
		}
	}

	searchedPaths = append(searchedPaths, "$PATH")

	for _, path := range commonPaths() {
		searchedPaths = append(searchedPaths, path)
		d.log.Debug("Checking common install path", "path", path)

		if _, err := os.Stat(path); err == nil {
			d.log.Debug("Found engine at common path", "path", path)

			return path, nil
		}
	}

	d.log.Warn("FriCAS not found in any searched location", "searched_paths", searchedPaths)

	return "", &errors.EngineNotFoundError{SearchedPaths: searchedPaths}
}

func commonPaths() []string {
	paths := []string{
		"/usr/local/bin/FRICASsys",
		"/usr/bin/FRICASsys",
		"/opt/fricas/bin/FRICASsys",
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(homeDir, ".local/bin/FRICASsys"))
	}

	return paths
}
