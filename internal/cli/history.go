package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/chatdo/internal/models"
)

// wrapWidth is the column human-readable output wraps at
const wrapWidth = 72

// HistoryCmd returns the history command
func HistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List every stored task",
		Long: `List the task table, one entry per stored task.

Examples:
  chatdo history
  chatdo history --user sara --json`,
		Args: cobra.NoArgs,
		RunE: runHistory,
	}

	cmd.Flags().String("user", "", "Only show tasks for this user")
	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (task text only)")

	return cmd
}

func runHistory(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	userID, _ := cmd.Flags().GetString("user")

	formatter := &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	a, release, err := GetApp(cmd)
	if err != nil {
		_ = formatter.ErrorWithSuggestion("INITIALIZATION_ERROR", err.Error(),
			"run 'chatdo init' or set SUPABASE_URL, SUPABASE_KEY and GOOGLE_API_KEY")
		return err
	}
	defer release()

	var records []*models.TaskRecord
	if strings.TrimSpace(userID) != "" {
		records, err = a.TodoService.ListTasks(ctx, userID)
	} else {
		records, err = a.TodoService.History(ctx)
	}
	if err != nil {
		_ = formatter.Error("TASK_FETCH_ERROR", fmt.Sprintf("Failed to retrieve tasks: %v", err))
		return err
	}

	return formatter.Success("tasks", records, func(w io.Writer) error {
		if quietMode {
			for _, r := range records {
				fmt.Fprintln(w, r.Task)
			}
			return nil
		}
		return writeHistory(w, records)
	})
}

// writeHistory renders one block per task, mirroring the history tab
func writeHistory(w io.Writer, records []*models.TaskRecord) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "No tasks found.")
		return err
	}

	for i, r := range records {
		if i > 0 {
			fmt.Fprintln(w)
		}
		userID := r.UserID
		if userID == "" {
			userID = "Unknown"
		}
		fmt.Fprintf(w, "Task for %s\n", userID)
		fmt.Fprintln(w, indent.String(wordwrap.String(r.Task, wrapWidth-2), 2))
	}
	return nil
}
