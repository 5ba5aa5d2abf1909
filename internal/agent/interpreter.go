package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/chatdo/internal/llm"
	"github.com/thenoetrevino/chatdo/internal/models"
	"github.com/thenoetrevino/chatdo/internal/services/todo"
	"github.com/thenoetrevino/chatdo/internal/tools"
)

// DefaultMaxTurns bounds the request/tool-result round trips of one Run
const DefaultMaxTurns = 10

// Executor runs one decoded tool call
type Executor interface {
	Execute(ctx context.Context, call tools.Call) (string, error)
}

// Interpreter turns a chat transcript into tool calls and a final reply
type Interpreter struct {
	backend      llm.Backend
	executor     Executor
	instructions string
	model        string
	toolChoice   string
	maxTurns     int
	temperature  *float32
	logger       *slog.Logger
	metrics      *Metrics
}

// Option configures an Interpreter
type Option func(*Interpreter)

func WithInstructions(s string) Option {
	return func(i *Interpreter) { i.instructions = s }
}

func WithModel(model string) Option {
	return func(i *Interpreter) { i.model = model }
}

// WithToolChoice sets the tool_choice of the first request of each run
func WithToolChoice(choice string) Option {
	return func(i *Interpreter) { i.toolChoice = choice }
}

func WithMaxTurns(n int) Option {
	return func(i *Interpreter) {
		if n > 0 {
			i.maxTurns = n
		}
	}
}

func WithTemperature(t float32) Option {
	return func(i *Interpreter) { i.temperature = &t }
}

func WithLogger(logger *slog.Logger) Option {
	return func(i *Interpreter) { i.logger = logger }
}

// NewInterpreter creates an interpreter with the default instructions,
// tool_choice "required" and DefaultMaxTurns
func NewInterpreter(backend llm.Backend, executor Executor, opts ...Option) *Interpreter {
	i := &Interpreter{
		backend:      backend,
		executor:     executor,
		instructions: DefaultInstructions,
		toolChoice:   llm.ToolChoiceRequired,
		maxTurns:     DefaultMaxTurns,
		logger:       slog.Default(),
		metrics:      NewMetrics(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Metrics returns the counters shared by every run of i
func (i *Interpreter) Metrics() *Metrics {
	return i.metrics
}

// Run sends the transcript to the backend, executes the tool calls it asks
// for and returns the final text. Every tool call of the run completes
// before Run returns.
func (i *Interpreter) Run(ctx context.Context, transcript []models.Turn) (string, error) {
	i.metrics.Runs.Add(1)

	messages := make([]llm.Message, 0, len(transcript)+1)
	messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: i.instructions})
	for _, turn := range transcript {
		messages = append(messages, llm.Message{Role: string(turn.Role), Content: turn.Content})
	}

	definitions := tools.Definitions()
	toolChoice := i.toolChoice

	for turn := 0; turn < i.maxTurns; turn++ {
		i.metrics.Requests.Add(1)
		resp, err := i.backend.Complete(ctx, llm.Request{
			Model:       i.model,
			Messages:    messages,
			Tools:       definitions,
			ToolChoice:  toolChoice,
			Temperature: i.temperature,
		})
		if err != nil {
			return "", err
		}

		msg := resp.Message
		if len(msg.ToolCalls) == 0 {
			reply := strings.TrimSpace(msg.Content)
			if reply == "" {
				return "", ErrEmptyReply
			}
			return reply, nil
		}

		messages = append(messages, llm.Message{
			Role:      llm.RoleAssistant,
			Content:   msg.Content,
			ToolCalls: msg.ToolCalls,
		})

		for _, tc := range msg.ToolCalls {
			result, err := i.dispatch(ctx, tc)
			if err != nil {
				return "", err
			}
			messages = append(messages, llm.Message{
				Role:       llm.RoleTool,
				ToolCallID: tc.ID,
				Content:    result,
			})
		}

		// forcing a tool again would keep the model from answering
		toolChoice = llm.ToolChoiceAuto
	}

	return "", ErrMaxTurns
}

// dispatch returns the text for the tool message. Argument problems become
// instructions for the model; anything else aborts the run.
func (i *Interpreter) dispatch(ctx context.Context, tc llm.ToolCall) (string, error) {
	logger := i.logger.With("tool", tc.Function.Name, "call_id", tc.ID)
	i.metrics.ToolCalls.Add(1)

	call, err := tools.Decode(tc.Function.Name, tc.Function.Arguments)
	if err != nil {
		logger.Warn("tool call rejected", "error", err)
		i.metrics.Rejections.Add(1)
		return rejection(err, tc.Function.Name), nil
	}

	if err := call.Validate(); err != nil {
		logger.Info("tool call missing arguments", "error", err)
		i.metrics.Rejections.Add(1)
		return rejection(err, tc.Function.Name), nil
	}

	result, err := i.executor.Execute(ctx, call)
	switch {
	case err == nil:
		logger.Debug("tool call completed")
		return result, nil
	case isInputError(err):
		logger.Info("tool call rejected by validation", "error", err)
		i.metrics.Rejections.Add(1)
		return rejection(err, tc.Function.Name), nil
	default:
		logger.Error("tool call failed", "error", err)
		i.metrics.Failures.Add(1)
		return "", fmt.Errorf("%w: %s: %w", ErrToolFailed, tc.Function.Name, err)
	}
}

func rejection(err error, name string) string {
	switch {
	case errors.Is(err, tools.ErrMissingUserID), errors.Is(err, todo.ErrEmptyUserID):
		return fmt.Sprintf("Error: %s was not called because user_id is missing. Ask the user for their user_id.", name)
	case errors.Is(err, tools.ErrMissingTask), errors.Is(err, todo.ErrEmptyTask):
		return fmt.Sprintf("Error: %s was not called because the task text is missing. Ask the user which task to add.", name)
	default:
		return fmt.Sprintf("Error: %v. Do not retry with the same arguments; explain the problem to the user.", err)
	}
}

func isInputError(err error) bool {
	for _, target := range []error{
		tools.ErrMissingUserID,
		tools.ErrMissingTask,
		todo.ErrEmptyUserID,
		todo.ErrEmptyTask,
		todo.ErrTaskTooLong,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
