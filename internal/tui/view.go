package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"
	"github.com/thenoetrevino/chatdo/internal/models"
	"github.com/thenoetrevino/chatdo/internal/tui/components"
	"github.com/thenoetrevino/chatdo/internal/tui/notifications"
)

// View implements tea.Model
func (m Model) View() tea.View {
	view := tea.NewView(m.Render())
	view.AltScreen = true
	return view
}

// Render returns the full screen as a string
func (m Model) Render() string {
	// Wait for terminal size to be initialized
	if m.width == 0 {
		return "Loading..."
	}

	tabs := components.RenderTabs(components.TabsProps{
		Tabs:         pageTitles,
		Selected:     int(m.page),
		Width:        m.width,
		Notification: notifications.RenderBanner(m.notification),
	})

	var body, help string
	if m.page == HistoryPage {
		body = lipgloss.JoinVertical(lipgloss.Left,
			components.TitleStyle.Render("All Tasks"),
			"",
			m.historyView.View(),
		)
		help = hint(m.keys.Refresh, m.keys.NextPage, m.keys.Quit)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left,
			m.transcript.View(),
			components.InputBoxStyle.Width(max(m.width-2, 10)).Render(m.input.View()),
		)
		help = hint(m.keys.Submit, m.keys.ClearInput, m.keys.NextPage, m.keys.Quit)
	}

	status := components.RenderStatusBar(components.StatusBarProps{
		Width: m.width,
		Right: help,
	})

	return lipgloss.JoinVertical(lipgloss.Left, tabs, body, status)
}

// refreshTranscript re-renders every turn into the transcript viewport
func (m *Model) refreshTranscript() {
	m.transcript.SetContent(m.renderTranscript())
	m.transcript.GotoBottom()
}

func (m Model) renderTranscript() string {
	width := max(m.transcript.Width(), 20)
	turns := m.session.Turns()

	if len(turns) == 0 && !m.pending {
		return components.SubtleStyle.Render("No messages yet. Tell me your user_id and what to do with your to-dos.")
	}

	blocks := make([]string, 0, len(turns)+1)
	for _, turn := range turns {
		blocks = append(blocks, renderTurn(turn, width))
	}

	if m.pending {
		blocks = append(blocks, m.spinner.View()+" Thinking...")
	} else if err := m.session.LastError(); err != nil {
		blocks = append(blocks, components.ErrorTextStyle.Render(
			wordwrap.String(fmt.Sprintf("An error occurred: %v", err), width)))
	}

	return strings.Join(blocks, "\n\n")
}

func renderTurn(turn models.Turn, width int) string {
	if turn.Role == models.RoleAssistant {
		return components.AssistantLabelStyle.Render("Assistant") + "\n" +
			components.RenderMarkdown(turn.Content, width)
	}
	return components.UserLabelStyle.Render("You") + "\n" + wordwrap.String(turn.Content, width)
}

// refreshHistory re-renders the history cards
func (m *Model) refreshHistory() {
	m.historyView.SetContent(m.renderHistory())
}

func (m Model) renderHistory() string {
	switch {
	case m.historyLoading && m.history == nil:
		return components.SubtleStyle.Render("Loading tasks...")
	case m.historyErr != nil:
		return components.ErrorTextStyle.Render(fmt.Sprintf("Failed to retrieve tasks: %v", m.historyErr))
	case len(m.history) == 0:
		return notifications.RenderInline(notifications.Warning, "No tasks found.")
	}

	width := min(max(m.historyView.Width(), 20), 80)
	cards := make([]string, 0, len(m.history))
	for _, r := range m.history {
		cards = append(cards, components.RenderTaskCard(components.TaskCardProps{
			UserID: r.UserID,
			Task:   r.Task,
			Width:  width,
		}))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}
