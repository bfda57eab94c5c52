package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	fricas "github.com/Foadsf/fricas-pro-cli"
)

// runPassthrough sends a single )command line and prints its cleaned
// output.
func runPassthrough(cmd *cobra.Command, line string) error {
	return runWithSession(func(ctx context.Context, set *settings, sess *fricas.Session) error {
		out, err := sess.Request(ctx, line, set.raw)
		if err != nil {
			return err
		}

		if out != "" {
			fmt.Fprintln(cmd.OutOrStdout(), set.palette().RenderOutput(out))
		}

		return nil
	})
}

// helpCmd shadows cobra's built-in help command: `fricas help` talks
// to the engine's )help system; CLI usage stays on --help.
var helpCmd = &cobra.Command{
	Use:   "help [topic]",
	Short: "Show FriCAS )help for a topic",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		line := ")help"
		if len(args) == 1 {
			line += " " + args[0]
		}

		return runPassthrough(cmd, line)
	},
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the FriCAS )summary overview",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runPassthrough(cmd, ")summary")
	},
}

// whatCategories are the argument values FriCAS accepts for )what.
var whatCategories = map[string]bool{
	"categories": true,
	"commands":   true,
	"domains":    true,
	"operations": true,
	"packages":   true,
	"synonym":    true,
	"things":     true,
}

var whatCmd = &cobra.Command{
	Use:   "what <category> [patterns...]",
	Short: "List operations, domains, packages or commands via )what",
	Long: `Passes through to FriCAS )what. Category must be one of:
categories, commands, domains, operations, packages, synonym, things.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !whatCategories[args[0]] {
			return fmt.Errorf("unknown category %q (want one of: categories, commands, domains, operations, packages, synonym, things)", args[0])
		}

		return runPassthrough(cmd, ")what "+strings.Join(args, " "))
	},
}

var systemCmd = &cobra.Command{
	Use:   "system <command...>",
	Short: "Run a shell command through FriCAS )system",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPassthrough(cmd, ")system "+strings.Join(args, " "))
	},
}

func init() {
	rootCmd.AddCommand(helpCmd, summaryCmd, whatCmd, systemCmd)
}
