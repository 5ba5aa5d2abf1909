package testutil

import (
	"context"
	"errors"
	"sync"

	"github.com/thenoetrevino/chatdo/internal/llm"
)

// ErrScriptExhausted is returned when FakeBackend receives more requests
// than it was scripted for
var ErrScriptExhausted = errors.New("fake backend: no scripted response left")

// FakeBackend replays scripted completions and records every request
type FakeBackend struct {
	mu        sync.Mutex
	responses []*llm.Response
	errs      []error
	requests  []llm.Request
}

var _ llm.Backend = (*FakeBackend)(nil)

// NewFakeBackend creates a backend that answers with responses in order
func NewFakeBackend(responses ...*llm.Response) *FakeBackend {
	return &FakeBackend{responses: responses}
}

// FailNext makes the next unanswered request fail with err
func (f *FakeBackend) FailNext(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs = append(f.errs, err)
}

// Push appends more scripted responses
func (f *FakeBackend) Push(responses ...*llm.Response) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses = append(f.responses, responses...)
}

// Complete implements llm.Backend
func (f *FakeBackend) Complete(ctx context.Context, req llm.Request) (*llm.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	req.Messages = append([]llm.Message(nil), req.Messages...)
	f.requests = append(f.requests, req)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		return nil, err
	}
	if len(f.responses) == 0 {
		return nil, ErrScriptExhausted
	}
	resp := f.responses[0]
	f.responses = f.responses[1:]
	return resp, nil
}

// Requests returns every request received so far
func (f *FakeBackend) Requests() []llm.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]llm.Request(nil), f.requests...)
}

// Reply builds a final assistant answer
func Reply(content string) *llm.Response {
	return &llm.Response{
		Message:      llm.Message{Role: llm.RoleAssistant, Content: content},
		FinishReason: "stop",
	}
}

// ToolCalls builds an assistant turn requesting the given calls. Each pair
// is a tool name and its JSON arguments.
func ToolCalls(calls ...[2]string) *llm.Response {
	msg := llm.Message{Role: llm.RoleAssistant}
	for i, c := range calls {
		msg.ToolCalls = append(msg.ToolCalls, llm.ToolCall{
			ID:   "call_" + string(rune('a'+i)),
			Type: "function",
			Function: llm.FunctionCall{
				Name:      c[0],
				Arguments: c[1],
			},
		})
	}
	return &llm.Response{Message: msg, FinishReason: "tool_calls"}
}
