package cmd

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/chatdo/internal/cli"
	"github.com/thenoetrevino/chatdo/internal/launcher"
)

// NewRootCmd builds the chatdo command tree. Without a subcommand it opens
// the chat TUI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "chatdo",
		Short: "chatdo - A conversational to-do manager",
		Long: `chatdo manages a shared to-do list through natural-language commands.

Run without arguments to open the chat interface, or use the subcommands
for scripting.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			return launcher.Launch(configPath)
		},
	}

	rootCmd.PersistentFlags().String("config", "", "config file (default $XDG_CONFIG_HOME/chatdo/config.yaml)")

	rootCmd.AddCommand(cli.AskCmd())
	rootCmd.AddCommand(cli.HistoryCmd())
	rootCmd.AddCommand(cli.InitCmd())

	return rootCmd
}

// Execute runs the command tree and returns the process exit code
func Execute() int {
	rootCmd := NewRootCmd()
	err := rootCmd.Execute()
	if err != nil {
		rootCmd.PrintErrln("Error:", err)
	}
	return cli.ExitCodeFor(err)
}
