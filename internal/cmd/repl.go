package cmd

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	fricas "github.com/Foadsf/fricas-pro-cli"
)

// quitCommands end the interactive loop. All four are FriCAS exit
// synonyms.
var quitCommands = map[string]bool{
	")quit":  true,
	")pquit": true,
	")fin":   true,
	")exit":  true,
}

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive FriCAS session with one engine process",
	Long: `Reads lines from stdin, sends each to a single long-lived engine
session and prints the cleaned response. Exit with )quit or EOF.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runWithSession(func(ctx context.Context, set *settings, sess *fricas.Session) error {
			pal := set.palette()
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, pal.RenderVersion(fricas.ExtractVersion(sess.Banner())))

			scanner := bufio.NewScanner(cmd.InOrStdin())
			scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

			for {
				fmt.Fprint(out, "fricas> ")

				if !scanner.Scan() {
					fmt.Fprintln(out)

					return scanner.Err()
				}

				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}

				if quitCommands[strings.Fields(line)[0]] {
					return nil
				}

				resp, err := sess.Request(ctx, line, set.raw)
				if err != nil {
					// Timeouts are recoverable here: report and keep
					// the loop alive, the session restarts the engine
					// on the next command if needed.
					if ctx.Err() != nil {
						return err
					}

					fmt.Fprintln(out, pal.RenderError(err.Error()))

					continue
				}

				if resp != "" {
					fmt.Fprintln(out, pal.RenderOutput(resp))
				}
			}
		})
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
