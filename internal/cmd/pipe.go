package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	fricas "github.com/Foadsf/fricas-pro-cli"
)

var pipeCmd = &cobra.Command{
	Use:   "pipe",
	Short: "Execute FriCAS input read from stdin",
	Long: `Reads a script from stdin, stages it as a temporary .input file and
executes it via )read. This keeps multi-line constructs intact, which
line-by-line feeding would break.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		script, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}

		if len(script) == 0 {
			return nil
		}

		// FriCAS only )reads files with the .input extension.
		dir, err := os.MkdirTemp("", "fricas-pipe-")
		if err != nil {
			return fmt.Errorf("create temp dir: %w", err)
		}
		defer os.RemoveAll(dir)

		path := filepath.Join(dir, "stdin.input")
		if err := os.WriteFile(path, script, 0o600); err != nil {
			return fmt.Errorf("stage input file: %w", err)
		}

		return runWithSession(func(ctx context.Context, set *settings, sess *fricas.Session) error {
			out, err := sess.Request(ctx, readCommand(path, false, true), set.raw)
			if err != nil {
				return err
			}

			if out != "" {
				fmt.Fprintln(cmd.OutOrStdout(), set.palette().RenderOutput(out))
			}

			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(pipeCmd)
}
