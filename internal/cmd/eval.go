package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	fricas "github.com/Foadsf/fricas-pro-cli"
)

var evalCmd = &cobra.Command{
	Use:   "eval <expression>",
	Short: "Evaluate a FriCAS expression and print the result",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		expr := strings.Join(args, " ")

		return runWithSession(func(ctx context.Context, set *settings, sess *fricas.Session) error {
			out, err := sess.Request(ctx, expr, set.raw)
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
	rootCmd.AddCommand(evalCmd)
}
