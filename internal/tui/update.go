package tui

import (
	"errors"
	"fmt"
	"log/slog"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/chatdo/internal/session"
	"github.com/thenoetrevino/chatdo/internal/tui/notifications"
)

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case tea.MouseWheelMsg:
		var cmd tea.Cmd
		if m.page == HistoryPage {
			m.historyView, cmd = m.historyView.Update(msg)
		} else {
			m.transcript, cmd = m.transcript.Update(msg)
		}
		return m, cmd

	case replyMsg:
		m.pending = false
		if msg.err != nil {
			slog.Error("turn failed", "error", msg.err)
			m.notification = &notifications.Notification{
				Severity: notifications.Error,
				Message:  fmt.Sprintf("An error occurred: %v", msg.err),
			}
		}
		m.refreshTranscript()
		return m, nil

	case historyMsg:
		if msg.seq != m.historySeq {
			return m, nil
		}
		m.historyLoading = false
		m.history = msg.records
		m.historyErr = msg.err
		if msg.err != nil {
			slog.Error("history load failed", "error", msg.err)
		}
		m.refreshHistory()
		return m, nil

	case spinner.TickMsg:
		if !m.pending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.refreshTranscript()
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextPage), key.Matches(msg, m.keys.PrevPage):
		return m.switchPage()
	}

	if m.page == HistoryPage {
		switch {
		case key.Matches(msg, m.keys.Refresh):
			return m, m.reloadHistory()
		case key.Matches(msg, m.keys.ScrollUp):
			m.historyView.PageUp()
		case key.Matches(msg, m.keys.ScrollDown):
			m.historyView.PageDown()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	case key.Matches(msg, m.keys.ClearInput):
		m.input.Reset()
		m.notification = nil
		return m, nil
	case key.Matches(msg, m.keys.ScrollUp):
		m.transcript.PageUp()
		return m, nil
	case key.Matches(msg, m.keys.ScrollDown):
		m.transcript.PageDown()
		return m, nil
	}

	// the input is locked while a turn is running
	if m.pending {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// switchPage toggles between the two tabs. The history page reloads every
// time it is shown.
func (m Model) switchPage() (tea.Model, tea.Cmd) {
	if m.page == ChatPage {
		m.page = HistoryPage
		m.input.Blur()
		return m, m.reloadHistory()
	}
	m.page = ChatPage
	return m, m.input.Focus()
}

func (m *Model) reloadHistory() tea.Cmd {
	m.historySeq++
	m.historyLoading = true
	m.refreshHistory()
	return loadHistory(m.ctx, m.todos, m.historySeq)
}

// submit begins a turn and hands the interpreter call to a command
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.pending {
		return m, nil
	}

	transcript, err := m.session.Begin(m.input.Value())
	switch {
	case errors.Is(err, session.ErrEmptyInput):
		return m, nil
	case err != nil:
		m.notification = &notifications.Notification{
			Severity: notifications.Warning,
			Message:  err.Error(),
		}
		return m, nil
	}

	m.input.Reset()
	m.pending = true
	m.notification = nil
	m.refreshTranscript()

	return m, tea.Batch(
		runTurn(m.ctx, m.session, transcript),
		m.spinner.Tick,
	)
}

// resize lays out the scrollable areas for the current window size
func (m *Model) resize() {
	contentWidth := max(m.width-2, 10)

	m.input.SetWidth(max(contentWidth-6, 10))

	m.transcript.SetWidth(contentWidth)
	m.transcript.SetHeight(max(m.height-tabBarHeight-inputBoxHeight-statusBarHeight, 1))

	m.historyView.SetWidth(contentWidth)
	m.historyView.SetHeight(max(m.height-tabBarHeight-pageTitleHeight-statusBarHeight, 1))

	m.refreshTranscript()
	m.refreshHistory()
}
