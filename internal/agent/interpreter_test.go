package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/chatdo/internal/llm"
	"github.com/thenoetrevino/chatdo/internal/models"
	"github.com/thenoetrevino/chatdo/internal/services/todo"
	"github.com/thenoetrevino/chatdo/internal/testutil"
	"github.com/thenoetrevino/chatdo/internal/tools"
)

func userTurn(content string) []models.Turn {
	return []models.Turn{{Role: models.RoleUser, Content: content}}
}

func setup(t *testing.T, responses ...*llm.Response) (*Interpreter, *testutil.FakeBackend, *testutil.FakeStore) {
	t.Helper()
	store := testutil.NewFakeStore()
	backend := testutil.NewFakeBackend(responses...)
	executor := tools.NewExecutor(todo.NewService(store, nil))
	return NewInterpreter(backend, executor, WithModel("test-model")), backend, store
}

func TestRun_AddTask(t *testing.T) {
	interp, backend, store := setup(t,
		testutil.ToolCalls([2]string{"add_task", `{"user_id":"sara","task":"Buy groceries"}`}),
		testutil.Reply("Added **Buy groceries** for sara."),
	)

	reply, err := interp.Run(context.Background(), userTurn("my user_id is sara add task Buy groceries"))
	require.NoError(t, err)
	assert.Equal(t, "Added **Buy groceries** for sara.", reply)
	assert.Equal(t, 1, store.Len())

	reqs := backend.Requests()
	require.Len(t, reqs, 2)

	first := reqs[0]
	assert.Equal(t, "test-model", first.Model)
	assert.Equal(t, llm.ToolChoiceRequired, first.ToolChoice)
	assert.Len(t, first.Tools, 3)
	require.Len(t, first.Messages, 2)
	assert.Equal(t, llm.RoleSystem, first.Messages[0].Role)
	assert.Equal(t, DefaultInstructions, first.Messages[0].Content)
	assert.Equal(t, llm.RoleUser, first.Messages[1].Role)

	second := reqs[1]
	assert.Equal(t, llm.ToolChoiceAuto, second.ToolChoice, "tool choice resets after a tool result")
	require.Len(t, second.Messages, 4)
	assert.Equal(t, llm.RoleAssistant, second.Messages[2].Role)
	require.Len(t, second.Messages[2].ToolCalls, 1)
	toolMsg := second.Messages[3]
	assert.Equal(t, llm.RoleTool, toolMsg.Role)
	assert.Equal(t, "call_a", toolMsg.ToolCallID)
	assert.Equal(t, "Task 'Buy groceries' added for user sara.", toolMsg.Content)
}

func TestRun_MissingUserIDAsksForIt(t *testing.T) {
	interp, backend, store := setup(t,
		testutil.ToolCalls([2]string{"add_task", `{"user_id":"","task":"buy milk"}`}),
		testutil.Reply("What is your user_id?"),
	)

	reply, err := interp.Run(context.Background(), userTurn("add task buy milk"))
	require.NoError(t, err)
	assert.Equal(t, "What is your user_id?", reply)
	assert.Zero(t, store.Calls, "no store call may happen without a user_id")

	reqs := backend.Requests()
	require.Len(t, reqs, 2)
	toolMsg := reqs[1].Messages[len(reqs[1].Messages)-1]
	assert.Equal(t, llm.RoleTool, toolMsg.Role)
	assert.Contains(t, toolMsg.Content, "user_id is missing")
}

func TestRun_MissingTaskText(t *testing.T) {
	interp, backend, store := setup(t,
		testutil.ToolCalls([2]string{"add_task", `{"user_id":"sara"}`}),
		testutil.Reply("Which task should I add?"),
	)

	_, err := interp.Run(context.Background(), userTurn("my id is sara, add a task"))
	require.NoError(t, err)
	assert.Zero(t, store.Calls)

	reqs := backend.Requests()
	toolMsg := reqs[1].Messages[len(reqs[1].Messages)-1]
	assert.Contains(t, toolMsg.Content, "task text is missing")
}

func TestRun_ClarificationWithoutToolCall(t *testing.T) {
	interp, backend, store := setup(t, testutil.Reply("Please tell me your user_id."))

	reply, err := interp.Run(context.Background(), userTurn("add task buy milk"))
	require.NoError(t, err)
	assert.Equal(t, "Please tell me your user_id.", reply)
	assert.Len(t, backend.Requests(), 1)
	assert.Zero(t, store.Calls)
}

func TestRun_UnknownToolIsReportedToModel(t *testing.T) {
	interp, backend, _ := setup(t,
		testutil.ToolCalls([2]string{"delete_database", `{}`}),
		testutil.Reply("I can only manage to-dos."),
	)

	reply, err := interp.Run(context.Background(), userTurn("drop everything"))
	require.NoError(t, err)
	assert.Equal(t, "I can only manage to-dos.", reply)

	reqs := backend.Requests()
	toolMsg := reqs[1].Messages[len(reqs[1].Messages)-1]
	assert.Contains(t, toolMsg.Content, "unknown tool")
}

func TestRun_MultipleToolsInSequence(t *testing.T) {
	interp, backend, store := setup(t,
		testutil.ToolCalls(
			[2]string{"add_task", `{"user_id":"sara","task":"Buy milk"}`},
			[2]string{"add_task", `{"user_id":"sara","task":"Walk dog"}`},
		),
		testutil.ToolCalls([2]string{"list_tasks", `{"user_id":"sara"}`}),
		testutil.Reply("1. Buy milk\n2. Walk dog"),
	)

	reply, err := interp.Run(context.Background(), userTurn("sara: add buy milk and walk dog, then list"))
	require.NoError(t, err)
	assert.Equal(t, "1. Buy milk\n2. Walk dog", reply)
	assert.Equal(t, 2, store.Len())

	reqs := backend.Requests()
	require.Len(t, reqs, 3)
	last := reqs[2].Messages[len(reqs[2].Messages)-1]
	assert.Equal(t, "1. Buy milk\n2. Walk dog", last.Content)
	assert.Equal(t, llm.ToolChoiceAuto, reqs[2].ToolChoice)
}

func TestRun_StoreFailureAborts(t *testing.T) {
	interp, backend, store := setup(t,
		testutil.ToolCalls([2]string{"list_tasks", `{"user_id":"sara"}`}),
		testutil.Reply("unreachable"),
	)
	storeErr := errors.New("connection refused")
	store.SelectAllErr = storeErr

	_, err := interp.Run(context.Background(), userTurn("list tasks for sara"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrToolFailed)
	assert.ErrorIs(t, err, storeErr)
	assert.Len(t, backend.Requests(), 1, "the run stops at the failing tool")
}

func TestRun_BackendError(t *testing.T) {
	interp, backend, _ := setup(t)
	apiErr := &llm.APIError{HTTPStatusCode: 401, Message: "API key not valid"}
	backend.FailNext(apiErr)

	_, err := interp.Run(context.Background(), userTurn("hi"))
	var got *llm.APIError
	require.True(t, errors.As(err, &got))
	assert.Equal(t, 401, got.HTTPStatusCode)
}

func TestRun_EmptyReply(t *testing.T) {
	interp, _, _ := setup(t, testutil.Reply("   "))

	_, err := interp.Run(context.Background(), userTurn("hi"))
	assert.ErrorIs(t, err, ErrEmptyReply)
}

func TestRun_MaxTurns(t *testing.T) {
	loop := testutil.ToolCalls([2]string{"list_tasks", `{"user_id":"sara"}`})
	store := testutil.NewFakeStore()
	backend := testutil.NewFakeBackend(loop, loop, loop, loop)
	interp := NewInterpreter(backend, tools.NewExecutor(todo.NewService(store, nil)), WithMaxTurns(3))

	_, err := interp.Run(context.Background(), userTurn("list forever"))
	assert.ErrorIs(t, err, ErrMaxTurns)
	assert.Len(t, backend.Requests(), 3)
}

func TestRun_TranscriptIsForwarded(t *testing.T) {
	interp, backend, _ := setup(t, testutil.Reply("Done."))
	transcript := []models.Turn{
		{Role: models.RoleUser, Content: "my user_id is sara"},
		{Role: models.RoleAssistant, Content: "Hi sara, what should I do?"},
		{Role: models.RoleUser, Content: "list my tasks"},
	}

	_, err := interp.Run(context.Background(), transcript)
	require.NoError(t, err)

	msgs := backend.Requests()[0].Messages
	require.Len(t, msgs, 4)
	assert.Equal(t, "assistant", msgs[2].Role)
	assert.Equal(t, "list my tasks", msgs[3].Content)
}

func TestOptions(t *testing.T) {
	interp := NewInterpreter(nil, nil,
		WithInstructions("be brief"),
		WithToolChoice(llm.ToolChoiceAuto),
		WithMaxTurns(0),
		WithTemperature(0.2),
	)
	assert.Equal(t, "be brief", interp.instructions)
	assert.Equal(t, llm.ToolChoiceAuto, interp.toolChoice)
	assert.Equal(t, DefaultMaxTurns, interp.maxTurns, "non-positive max turns keeps the default")
	require.NotNil(t, interp.temperature)
	assert.InDelta(t, 0.2, *interp.temperature, 1e-6)
}
