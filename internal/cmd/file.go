package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	fricas "github.com/Foadsf/fricas-pro-cli"
	fricaserr "github.com/Foadsf/fricas-pro-cli/internal/errors"
)

var (
	fileQuiet   bool
	fileIfThere bool
)

var fileCmd = &cobra.Command{
	Use:   "file <path>",
	Short: "Execute a FriCAS .input file via )read",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		if !fileIfThere {
			if _, err := os.Stat(path); err != nil {
				return fmt.Errorf("%w: %s", fricaserr.ErrInputFileNotFound, path)
			}
		}

		return runWithSession(func(ctx context.Context, set *settings, sess *fricas.Session) error {
			out, err := sess.Request(ctx, readCommand(path, fileQuiet, fileIfThere), set.raw)
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

// readCommand builds a )read line. The path is quoted so spaces
// survive the engine's tokenizer.
func readCommand(path string, quiet, ifThere bool) string {
	var b strings.Builder

	b.WriteString(`)read "`)
	b.WriteString(path)
	b.WriteString(`"`)

	if quiet {
		b.WriteString(" )quiet")
	}

	if ifThere {
		b.WriteString(" )ifthere")
	}

	return b.String()
}

func init() {
	fileCmd.Flags().BoolVar(&fileQuiet, "quiet", false, "suppress echo of file contents ()quiet)")
	fileCmd.Flags().BoolVar(&fileIfThere, "ifthere", false, "silently skip a missing file ()ifthere)")
	rootCmd.AddCommand(fileCmd)
}
