package tools

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Kind enumerates the operations the interpreter may invoke
type Kind int

const (
	KindAddTask Kind = iota + 1
	KindRemoveAllTasks
	KindListTasks
)

// Kinds lists every tool in declaration order
var Kinds = []Kind{KindAddTask, KindRemoveAllTasks, KindListTasks}

// String returns the wire name of the tool
func (k Kind) String() string {
	switch k {
	case KindAddTask:
		return "add_task"
	case KindRemoveAllTasks:
		return "remove_all_tasks"
	case KindListTasks:
		return "list_tasks"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps a wire name back to its Kind
func ParseKind(name string) (Kind, bool) {
	for _, k := range Kinds {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}

type AddTaskArgs struct {
	UserID string `json:"user_id"`
	Task   string `json:"task"`
}

type RemoveAllTasksArgs struct {
	UserID string `json:"user_id"`
}

type ListTasksArgs struct {
	UserID string `json:"user_id"`
}

// Call is a decoded tool invocation. Exactly one payload matching Kind is set.
type Call struct {
	Kind           Kind
	AddTask        *AddTaskArgs
	RemoveAllTasks *RemoveAllTasksArgs
	ListTasks      *ListTasksArgs
}

// Decode turns a tool name and its JSON arguments into a Call
func Decode(name, arguments string) (Call, error) {
	kind, ok := ParseKind(name)
	if !ok {
		return Call{}, fmt.Errorf("%w: %q", ErrUnknownTool, name)
	}

	if strings.TrimSpace(arguments) == "" {
		arguments = "{}"
	}
	data := []byte(arguments)

	call := Call{Kind: kind}
	var err error
	switch kind {
	case KindAddTask:
		call.AddTask = new(AddTaskArgs)
		err = json.Unmarshal(data, call.AddTask)
	case KindRemoveAllTasks:
		call.RemoveAllTasks = new(RemoveAllTasksArgs)
		err = json.Unmarshal(data, call.RemoveAllTasks)
	case KindListTasks:
		call.ListTasks = new(ListTasksArgs)
		err = json.Unmarshal(data, call.ListTasks)
	}
	if err != nil {
		return Call{}, fmt.Errorf("%w for %s: %v", ErrBadArguments, name, err)
	}

	return call, nil
}

// UserID returns the user the call targets
func (c Call) UserID() string {
	switch c.Kind {
	case KindAddTask:
		if c.AddTask != nil {
			return c.AddTask.UserID
		}
	case KindRemoveAllTasks:
		if c.RemoveAllTasks != nil {
			return c.RemoveAllTasks.UserID
		}
	case KindListTasks:
		if c.ListTasks != nil {
			return c.ListTasks.UserID
		}
	}
	return ""
}

// Validate checks that every required argument is present. A Call that
// fails validation must never reach the store.
func (c Call) Validate() error {
	if _, ok := ParseKind(c.Kind.String()); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTool, c.Kind)
	}
	if strings.TrimSpace(c.UserID()) == "" {
		return ErrMissingUserID
	}
	if c.Kind == KindAddTask && strings.TrimSpace(c.AddTask.Task) == "" {
		return ErrMissingTask
	}
	return nil
}
