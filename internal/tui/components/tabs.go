package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// TabsProps describes the tab bar
type TabsProps struct {
	Tabs     []string
	Selected int
	Width    int
	// Notification is rendered right-aligned on the bar when not empty
	Notification string
}

// RenderTabs renders the page tabs, filling the rest of the row with the
// tab gap and an optional notification
//
// Layout:
//
//	╭──────────────╮╭──────────────╮            [Notification]
//	│ Manage To-Dos││ Task History │────────────
func RenderTabs(props TabsProps) string {
	rendered := make([]string, 0, len(props.Tabs))
	for i, name := range props.Tabs {
		if i == props.Selected {
			rendered = append(rendered, ActiveTabStyle.Render(name))
		} else {
			rendered = append(rendered, TabStyle.Render(name))
		}
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)

	gapWidth := max(props.Width-lipgloss.Width(row)-lipgloss.Width(props.Notification)-2, 0)
	gap := TabGapStyle.Render(strings.Repeat(" ", gapWidth))

	if props.Notification != "" {
		return lipgloss.JoinHorizontal(lipgloss.Bottom, row, gap, props.Notification)
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, row, gap)
}
