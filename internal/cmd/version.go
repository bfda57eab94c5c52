package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	fricas "github.com/Foadsf/fricas-pro-cli"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the FriCAS engine version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runWithSession(func(ctx context.Context, set *settings, sess *fricas.Session) error {
			v := fricas.ExtractVersion(sess.Banner())

			// Some builds print nothing before the first prompt;
			// )summary repeats the identification in that case.
			if strings.TrimSpace(v) == "" {
				out, err := sess.Request(ctx, ")summary", false)
				if err != nil {
					return err
				}

				v = fricas.ExtractVersion(out)
				if strings.TrimSpace(v) == "" {
					v = out
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "fricas-pro-cli %s\n", Version)
			if v != "" {
				fmt.Fprintln(cmd.OutOrStdout(), set.palette().RenderVersion(v))
			}

			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
