package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"
)

// AskCmd returns the one-shot ask command
func AskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask <command...>",
		Short: "Send one to-do command to the assistant",
		Long: `Send a single natural-language command and print the assistant's reply.

Examples:
  chatdo ask my user_id is sara add task Buy groceries
  chatdo ask "list the tasks for sara" --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: runAsk,
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Print the reply only, without wrapping")

	return cmd
}

func runAsk(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	a, release, err := GetApp(cmd)
	if err != nil {
		_ = formatter.ErrorWithSuggestion("INITIALIZATION_ERROR", err.Error(),
			"run 'chatdo init' or set SUPABASE_URL, SUPABASE_KEY and GOOGLE_API_KEY")
		return err
	}
	defer release()

	sess := a.NewSession()
	reply, err := sess.Submit(cmd.Context(), strings.Join(args, " "))
	if err != nil {
		_ = formatter.Error("TURN_ERROR", fmt.Sprintf("An error occurred: %v", err))
		return err
	}

	return formatter.Success("reply", reply, func(w io.Writer) error {
		if !quietMode {
			reply = wordwrap.String(reply, wrapWidth)
		}
		_, err := fmt.Fprintln(w, reply)
		return err
	})
}
