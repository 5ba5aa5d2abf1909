package tools

import "github.com/thenoetrevino/chatdo/internal/llm"

var descriptions = map[Kind]string{
	KindAddTask:        "Add a task for the given user.",
	KindRemoveAllTasks: "Remove all tasks for the given user.",
	KindListTasks:      "List all tasks for the given user.",
}

// Definitions returns the tool declarations sent with every completion
func Definitions() []llm.Tool {
	defs := make([]llm.Tool, 0, len(Kinds))
	for _, kind := range Kinds {
		defs = append(defs, llm.Tool{
			Type: "function",
			Function: &llm.FunctionDefinition{
				Name:        kind.String(),
				Description: descriptions[kind],
				Parameters:  parameters(kind),
			},
		})
	}
	return defs
}

func parameters(kind Kind) map[string]any {
	properties := map[string]any{
		"user_id": map[string]any{
			"type":        "string",
			"description": "Identifier of the user who owns the tasks.",
		},
	}
	required := []string{"user_id"}

	if kind == KindAddTask {
		properties["task"] = map[string]any{
			"type":        "string",
			"description": "Text of the task to add.",
		}
		required = append(required, "task")
	}

	return map[string]any{
		"type":       "object",
		"properties": properties,
		"required":   required,
	}
}
