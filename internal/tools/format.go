package tools

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/chatdo/internal/models"
)

// FormatAdded confirms a single insert
func FormatAdded(userID, task string) string {
	return fmt.Sprintf("Task '%s' added for user %s.", task, userID)
}

// FormatRemoved confirms a remove-all
func FormatRemoved(userID string) string {
	return fmt.Sprintf("All tasks removed for user %s.", userID)
}

// FormatList numbers tasks from 1 in the order given
func FormatList(userID string, records []*models.TaskRecord) string {
	if len(records) == 0 {
		return fmt.Sprintf("No tasks found for user %s.", userID)
	}

	lines := make([]string, 0, len(records))
	for i, r := range records {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, r.Task))
	}
	return strings.Join(lines, "\n")
}
