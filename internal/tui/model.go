package tui

import (
	"context"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/textinput"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/chatdo/internal/config"
	"github.com/thenoetrevino/chatdo/internal/models"
	"github.com/thenoetrevino/chatdo/internal/services/todo"
	"github.com/thenoetrevino/chatdo/internal/session"
	"github.com/thenoetrevino/chatdo/internal/tui/components"
	"github.com/thenoetrevino/chatdo/internal/tui/notifications"
)

// Page identifies a tab
type Page int

const (
	ChatPage Page = iota
	HistoryPage
)

var pageTitles = []string{"Manage To-Dos", "Task History"}

// Placeholder is shown in the empty chat input
const Placeholder = "Enter your to-do command (e.g., 'my user_id is sara add task Buy groceries')"

// layout rows outside the scrollable areas
const (
	tabBarHeight    = 3
	inputBoxHeight  = 3
	statusBarHeight = 1
	pageTitleHeight = 2
)

// Model represents the application state for the TUI
type Model struct {
	ctx     context.Context
	session *session.Session
	todos   todo.Service
	keys    KeyMap

	page          Page
	width, height int

	// chat page
	input        textinput.Model
	transcript   viewport.Model
	spinner      spinner.Model
	pending      bool
	notification *notifications.Notification

	// history page
	history        []*models.TaskRecord
	historyErr     error
	historyLoading bool
	historySeq     int // latest load issued; older results are dropped
	historyView    viewport.Model
}

// New creates the TUI model. The session owns the transcript; todos serves
// the history page.
func New(ctx context.Context, sess *session.Session, todos todo.Service, cfg *config.Config) Model {
	components.InitStyles(cfg.ColorScheme)

	input := textinput.New()
	input.Placeholder = Placeholder
	input.Prompt = "› "
	input.CharLimit = todo.MaxTaskLength * 2
	input.Focus()

	return Model{
		ctx:         ctx,
		session:     sess,
		todos:       todos,
		keys:        NewKeyMap(cfg.KeyMappings),
		input:       input,
		transcript:  viewport.New(),
		spinner:     spinner.New(spinner.WithSpinner(spinner.Dot)),
		historyView: viewport.New(),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Page returns the active tab
func (m Model) Page() Page {
	return m.page
}

// Pending reports whether an interpreter turn is running
func (m Model) Pending() bool {
	return m.pending
}

// Input returns the current chat input text
func (m Model) Input() string {
	return m.input.Value()
}

// Notification returns the banner currently shown, if any
func (m Model) Notification() *notifications.Notification {
	return m.notification
}
