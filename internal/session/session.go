package session

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/thenoetrevino/chatdo/internal/models"
)

var (
	ErrEmptyInput     = errors.New("input cannot be empty")
	ErrTurnInProgress = errors.New("a turn is already in progress")
)

// Runner produces the assistant reply for a transcript
type Runner interface {
	Run(ctx context.Context, transcript []models.Turn) (string, error)
}

// Session holds the append-only transcript of one interactive session.
// Only one turn may be in flight at a time.
type Session struct {
	mu      sync.Mutex
	runner  Runner
	turns   []models.Turn
	pending bool
	lastErr error
}

func New(runner Runner) *Session {
	return &Session{runner: runner}
}

// Begin appends the user turn and returns a snapshot of the transcript to
// hand to the interpreter
func (s *Session) Begin(input string) ([]models.Turn, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, ErrEmptyInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending {
		return nil, ErrTurnInProgress
	}

	s.pending = true
	s.lastErr = nil
	s.turns = append(s.turns, models.Turn{Role: models.RoleUser, Content: input})
	return s.snapshot(), nil
}

// Complete appends the assistant reply and ends the turn
func (s *Session) Complete(reply string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.pending {
		return
	}
	s.pending = false
	s.turns = append(s.turns, models.Turn{Role: models.RoleAssistant, Content: reply})
}

// Fail ends the turn without an assistant reply. The user turn stays in the
// transcript.
func (s *Session) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.pending {
		return
	}
	s.pending = false
	s.lastErr = err
}

// Finish runs the interpreter on the snapshot returned by Begin and records
// the outcome. It blocks until every tool call of the turn has completed.
func (s *Session) Finish(ctx context.Context, transcript []models.Turn) (string, error) {
	reply, err := s.runner.Run(ctx, transcript)
	if err != nil {
		s.Fail(err)
		return "", err
	}

	s.Complete(reply)
	return reply, nil
}

// Submit runs one complete turn
func (s *Session) Submit(ctx context.Context, input string) (string, error) {
	transcript, err := s.Begin(input)
	if err != nil {
		return "", err
	}
	return s.Finish(ctx, transcript)
}

// LastError returns the error of the most recent failed turn, cleared when
// the next turn begins
func (s *Session) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Pending reports whether a turn is in flight
func (s *Session) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Turns returns a copy of the transcript
func (s *Session) Turns() []models.Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Session) snapshot() []models.Turn {
	out := make([]models.Turn, len(s.turns))
	copy(out, s.turns)
	return out
}
