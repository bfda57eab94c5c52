package cmd

import (
	"context"

	"github.com/spf13/cobra"

	fricas "github.com/Foadsf/fricas-pro-cli"
	"github.com/Foadsf/fricas-pro-cli/internal/toolserver"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve FriCAS as an MCP tool server over stdio",
	Long: `Starts one engine session and exposes it to MCP clients as the
fricas_eval, fricas_version and fricas_what tools. The server speaks
MCP on stdin/stdout, so run it from an MCP-aware client rather than a
terminal.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runWithSession(func(ctx context.Context, set *settings, sess *fricas.Session) error {
			srv, err := toolserver.New(&toolserver.Config{
				Name:    "fricas",
				Version: Version,
				Engine:  sess,
				Logger:  set.logger,
			})
			if err != nil {
				return err
			}

			return srv.Run(ctx)
		})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
