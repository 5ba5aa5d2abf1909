package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/chatdo/internal/models"
)

// runnerFunc adapts a function to Runner
type runnerFunc func(ctx context.Context, transcript []models.Turn) (string, error)

func (f runnerFunc) Run(ctx context.Context, transcript []models.Turn) (string, error) {
	return f(ctx, transcript)
}

func echo(reply string) Runner {
	return runnerFunc(func(ctx context.Context, transcript []models.Turn) (string, error) {
		return reply, nil
	})
}

func TestSubmitAppendsBothTurns(t *testing.T) {
	s := New(echo("Task added."))

	reply, err := s.Submit(context.Background(), "my user_id is sara add task Buy milk")
	require.NoError(t, err)
	assert.Equal(t, "Task added.", reply)

	assert.Equal(t, []models.Turn{
		{Role: models.RoleUser, Content: "my user_id is sara add task Buy milk"},
		{Role: models.RoleAssistant, Content: "Task added."},
	}, s.Turns())
	assert.False(t, s.Pending())
	assert.NoError(t, s.LastError())
}

func TestRunnerSeesFullTranscript(t *testing.T) {
	var seen [][]models.Turn
	s := New(runnerFunc(func(ctx context.Context, transcript []models.Turn) (string, error) {
		seen = append(seen, transcript)
		return "ok", nil
	}))

	_, err := s.Submit(context.Background(), "first")
	require.NoError(t, err)
	_, err = s.Submit(context.Background(), "second")
	require.NoError(t, err)

	require.Len(t, seen, 2)
	assert.Len(t, seen[0], 1)
	require.Len(t, seen[1], 3)
	assert.Equal(t, "second", seen[1][2].Content)
}

func TestFailedTurnKeepsUserMessage(t *testing.T) {
	backendErr := errors.New("backend unreachable")
	calls := 0
	s := New(runnerFunc(func(ctx context.Context, transcript []models.Turn) (string, error) {
		calls++
		if calls == 2 {
			return "", backendErr
		}
		return "done", nil
	}))

	_, err := s.Submit(context.Background(), "one")
	require.NoError(t, err)
	before := s.Turns()

	_, err = s.Submit(context.Background(), "two")
	require.ErrorIs(t, err, backendErr)
	assert.ErrorIs(t, s.LastError(), backendErr)
	assert.False(t, s.Pending(), "the session stays usable")

	after := s.Turns()
	require.Len(t, after, len(before)+1)
	assert.Equal(t, before, after[:len(before)], "earlier turns are never modified")
	assert.Equal(t, models.Turn{Role: models.RoleUser, Content: "two"}, after[len(after)-1])

	_, err = s.Submit(context.Background(), "three")
	require.NoError(t, err)
	assert.NoError(t, s.LastError(), "a new turn clears the previous error")
}

func TestBeginRejectsEmptyInput(t *testing.T) {
	s := New(echo("x"))

	_, err := s.Begin("   ")
	assert.ErrorIs(t, err, ErrEmptyInput)
	assert.Empty(t, s.Turns())
}

func TestOneTurnAtATime(t *testing.T) {
	s := New(echo("x"))

	snapshot, err := s.Begin("first")
	require.NoError(t, err)
	require.Len(t, snapshot, 1)
	assert.True(t, s.Pending())

	_, err = s.Begin("second")
	assert.ErrorIs(t, err, ErrTurnInProgress)

	s.Complete("reply")
	_, err = s.Begin("second")
	assert.NoError(t, err)
}

func TestSnapshotIsACopy(t *testing.T) {
	s := New(echo("x"))

	snapshot, err := s.Begin("hello")
	require.NoError(t, err)
	snapshot[0].Content = "mutated"

	assert.Equal(t, "hello", s.Turns()[0].Content)
}

func TestCompleteWithoutTurnIsIgnored(t *testing.T) {
	s := New(echo("x"))

	s.Complete("orphan")
	s.Fail(errors.New("orphan"))

	assert.Empty(t, s.Turns())
	assert.NoError(t, s.LastError())
}
