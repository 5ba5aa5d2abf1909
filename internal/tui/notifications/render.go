package notifications

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/chatdo/internal/tui/theme"
)

// label returns the icon and heading shown for s
func (s Severity) label() (icon, title string) {
	switch s {
	case Warning:
		return "⚠", "Warning"
	case Error:
		return "✕", "Error"
	default:
		return "ℹ", "Info"
	}
}

// colors returns the foreground/background pair of the active theme for s
func (s Severity) colors() (fg, bg string) {
	switch s {
	case Warning:
		return theme.WarningFg, theme.WarningBg
	case Error:
		return theme.ErrorFg, theme.ErrorBg
	default:
		return theme.InfoFg, theme.InfoBg
	}
}

// Render renders a boxed notification with a heading, used for messages that
// need more than one line
func Render(severity Severity, message string) string {
	icon, title := severity.label()
	fg, bg := severity.colors()

	heading := icon + " " + title
	width := max(lipgloss.Width(heading), lipgloss.Width(message))
	text := lipgloss.NewStyle().Foreground(lipgloss.Color(fg)).Width(width)

	content := lipgloss.JoinVertical(lipgloss.Left,
		text.Bold(true).Render(heading),
		text.Render(message),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(bg)).
		Background(lipgloss.Color(bg)).
		Padding(0, 1).
		Render(content)
}

// RenderInline renders a compact single-line notification
func RenderInline(severity Severity, message string) string {
	icon, _ := severity.label()
	fg, bg := severity.colors()

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(bg)).
		Padding(0, 1).
		Render(icon + " " + message)
}

// RenderBanner renders n next to the tab bar, or "" when n is nil
func RenderBanner(n *Notification) string {
	if n == nil {
		return ""
	}
	return RenderInline(n.Severity, n.Message)
}
