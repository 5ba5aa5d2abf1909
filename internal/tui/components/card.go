package components

import (
	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"
)

type TaskCardProps struct {
	UserID string
	Task   string
	Width  int
}

// RenderTaskCard renders one history entry labeled with its owner
func RenderTaskCard(props TaskCardProps) string {
	// border and padding take four columns
	inner := max(props.Width-4, 10)

	userID := props.UserID
	if userID == "" {
		userID = "Unknown"
	}

	title := CardTitleStyle.Render("Task for " + userID)
	body := wordwrap.String(props.Task, inner)

	return CardStyle.
		Width(inner + 4).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, "", body))
}
