package cli

import (
	"errors"

	"github.com/thenoetrevino/chatdo/internal/agent"
	"github.com/thenoetrevino/chatdo/internal/config"
	"github.com/thenoetrevino/chatdo/internal/services/todo"
	"github.com/thenoetrevino/chatdo/internal/session"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: store errors, network errors, model backend failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: missing arguments, empty prompts, unknown flags.
	ExitUsage = 2

	// ExitDataErr indicates the model produced something unusable.
	// Use for: empty replies, exhausted tool-call turns.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: empty user ids, empty or oversized task text.
	ExitValidation = 5

	// ExitConfig indicates required configuration is missing.
	// Use for: unset SUPABASE_URL, SUPABASE_KEY or GOOGLE_API_KEY.
	ExitConfig = 6
)

// ExitCodeFor maps an error returned by a command to its exit code
func ExitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, config.ErrMissingConfig):
		return ExitConfig
	case errors.Is(err, session.ErrEmptyInput):
		return ExitUsage
	case errors.Is(err, todo.ErrEmptyUserID),
		errors.Is(err, todo.ErrEmptyTask),
		errors.Is(err, todo.ErrTaskTooLong):
		return ExitValidation
	case errors.Is(err, agent.ErrEmptyReply),
		errors.Is(err, agent.ErrMaxTurns):
		return ExitDataErr
	default:
		return ExitError
	}
}
