package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/chatdo/internal/agent"
	"github.com/thenoetrevino/chatdo/internal/config"
	"github.com/thenoetrevino/chatdo/internal/services/todo"
	"github.com/thenoetrevino/chatdo/internal/session"
)

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"missing config", fmt.Errorf("%w: please set GOOGLE_API_KEY", config.ErrMissingConfig), ExitConfig},
		{"empty input", session.ErrEmptyInput, ExitUsage},
		{"empty user", fmt.Errorf("failed to add task: %w", todo.ErrEmptyUserID), ExitValidation},
		{"task too long", todo.ErrTaskTooLong, ExitValidation},
		{"empty reply", agent.ErrEmptyReply, ExitDataErr},
		{"max turns", agent.ErrMaxTurns, ExitDataErr},
		{"tool failure", fmt.Errorf("%w: add_task: connection refused", agent.ErrToolFailed), ExitError},
		{"other", errors.New("boom"), ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFor(tt.err))
		})
	}
}
