package tui

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/chatdo/internal/models"
	"github.com/thenoetrevino/chatdo/internal/services/todo"
	"github.com/thenoetrevino/chatdo/internal/session"
)

// replyMsg carries the outcome of one interpreter turn
type replyMsg struct {
	reply string
	err   error
}

// historyMsg carries a fresh read of every stored task. seq identifies the
// load that produced it.
type historyMsg struct {
	seq     int
	records []*models.TaskRecord
	err     error
}

// runTurn finishes the turn begun with transcript off the update loop
func runTurn(ctx context.Context, sess *session.Session, transcript []models.Turn) tea.Cmd {
	return func() tea.Msg {
		reply, err := sess.Finish(ctx, transcript)
		return replyMsg{reply: reply, err: err}
	}
}

// loadHistory reads the whole task table
func loadHistory(ctx context.Context, todos todo.Service, seq int) tea.Cmd {
	return func() tea.Msg {
		records, err := todos.History(ctx)
		return historyMsg{seq: seq, records: records, err: err}
	}
}
