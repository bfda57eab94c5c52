// Package cmd provides CLI commands for the fricas tool.
package cmd

import (
	"context"
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	fricaserr "github.com/Foadsf/fricas-pro-cli/internal/errors"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// Exit codes follow timeout(1) conventions: 124 for timeouts, 130 for
// interrupts, 2 for a missing engine or input file.
const (
	exitOK        = 0
	exitError     = 1
	exitNotFound  = 2
	exitTimeout   = 124
	exitInterrupt = 130
)

var (
	flagFricasPath string
	flagConfig     string
	flagTimeout    float64
	flagRaw        bool
	flagDebug      bool
	flagNoColor    bool
)

var rootCmd = &cobra.Command{
	Use:     "fricas",
	Short:   "A frontend for the FriCAS computer algebra system",
	Version: Version,
	Long: `fricas drives the FriCAS interactive console as a child process,
turning its prompt-based protocol into clean one-shot commands.

Expressions are evaluated in a fresh engine session; output is
stripped of startup banners and prompt echo unless --raw is given.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagFricasPath, "fricas-path", "", "path to the FriCAS binary (overrides FRICAS_EXE and discovery)")
	pf.StringVar(&flagConfig, "config", "", "path to a TOML configuration file")
	pf.Float64Var(&flagTimeout, "timeout", 0, "per-command timeout in seconds (0 uses the default)")
	pf.BoolVar(&flagRaw, "raw", false, "print engine output without banner and echo stripping")
	pf.BoolVar(&flagDebug, "debug", false, "log driver activity to stderr")
	pf.BoolVar(&flagNoColor, "no-color", false, "disable ANSI colors")
}

// Execute runs the root command and returns an exit code.
// The caller (main) should call os.Exit with this code.
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return exitOK
	}

	code := exitCode(err)
	if code != exitInterrupt {
		fmt.Fprintln(os.Stderr, "error: "+err.Error())
	}

	return code
}

// exitCode maps an error to the process exit code.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case stderrors.Is(err, context.Canceled):
		return exitInterrupt
	default:
	}

	if _, ok := stderrors.AsType[*fricaserr.EngineNotFoundError](err); ok {
		return exitNotFound
	}

	if _, ok := stderrors.AsType[*fricaserr.LaunchError](err); ok {
		return exitNotFound
	}

	if stderrors.Is(err, fricaserr.ErrInputFileNotFound) || stderrors.Is(err, fs.ErrNotExist) {
		return exitNotFound
	}

	if _, ok := stderrors.AsType[*fricaserr.StartupTimeoutError](err); ok {
		return exitTimeout
	}

	if _, ok := stderrors.AsType[*fricaserr.CommandTimeoutError](err); ok {
		return exitTimeout
	}

	return exitError
}
