package tools

import (
	"context"
	"strings"

	"github.com/thenoetrevino/chatdo/internal/services/todo"
)

// Executor runs decoded calls against the to-do service
type Executor struct {
	todos todo.Service
}

func NewExecutor(todos todo.Service) *Executor {
	return &Executor{todos: todos}
}

// Execute validates call, performs exactly one service operation and
// returns the text handed back to the interpreter
func (e *Executor) Execute(ctx context.Context, call Call) (string, error) {
	if err := call.Validate(); err != nil {
		return "", err
	}

	userID := strings.TrimSpace(call.UserID())

	switch call.Kind {
	case KindAddTask:
		task := strings.TrimSpace(call.AddTask.Task)
		if err := e.todos.AddTask(ctx, userID, task); err != nil {
			return "", err
		}
		return FormatAdded(userID, task), nil

	case KindRemoveAllTasks:
		if err := e.todos.RemoveAllTasks(ctx, userID); err != nil {
			return "", err
		}
		return FormatRemoved(userID), nil

	default:
		records, err := e.todos.ListTasks(ctx, userID)
		if err != nil {
			return "", err
		}
		return FormatList(userID, records), nil
	}
}
