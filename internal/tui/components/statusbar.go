package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/chatdo/internal/tui/theme"
)

type StatusBarProps struct {
	Width int
	// Left defaults to the application name
	Left  string
	Right string
}

// RenderStatusBar renders a status bar with left and right aligned text
func RenderStatusBar(props StatusBarProps) string {
	leftText := props.Left
	if leftText == "" {
		leftText = "chatdo - To-Do Manager"
	}

	style := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))

	leftRendered := style.Render(leftText)
	rightRendered := style.Render(props.Right)

	gapWidth := max(props.Width-lipgloss.Width(leftRendered)-lipgloss.Width(rightRendered), 1)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, strings.Repeat(" ", gapWidth), rightRendered)
}
