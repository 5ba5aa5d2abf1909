package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

// Client calls {baseURL}/chat/completions
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  *slog.Logger
}

var _ Backend = new(Client)

// NewClient creates a chat-completions client. A nil httpClient uses
// http.DefaultClient.
func NewClient(baseURL, apiKey string, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  httpClient,
		logger:  logger,
	}
}

// Complete sends req and returns the first choice
func (c *Client) Complete(ctx context.Context, req Request) (*Response, error) {
	bodyBytes, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	c.logger.DebugContext(ctx, "generating",
		"model", req.Model,
		"messages", len(req.Messages),
		"tool_choice", req.ToolChoice,
	)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("chat completion request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read completion: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp.StatusCode, body)
	}

	var completion completionResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return nil, fmt.Errorf("error unmarshalling completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return nil, ErrNoChoices
	}

	choice := completion.Choices[0]
	c.logger.DebugContext(ctx, "completion received",
		"finish_reason", choice.FinishReason,
		"tool_calls", len(choice.Message.ToolCalls),
		"total_tokens", completion.Usage.TotalTokens,
	)

	return &Response{
		Message:      choice.Message,
		FinishReason: choice.FinishReason,
		Usage:        completion.Usage,
	}, nil
}

// decodeError handles both {"error":{...}} and the [{"error":{...}}] shape
// some Gemini endpoints return
func decodeError(status int, body []byte) error {
	var single errorResponse
	if err := json.Unmarshal(body, &single); err == nil && single.Error != nil {
		single.Error.HTTPStatusCode = status
		return single.Error
	}

	var list []errorResponse
	if err := json.Unmarshal(body, &list); err == nil && len(list) > 0 && list[0].Error != nil {
		list[0].Error.HTTPStatusCode = status
		return list[0].Error
	}

	return &APIError{
		HTTPStatusCode: status,
		Message:        fmt.Sprintf("bad status: %d, body: %s", status, strings.TrimSpace(string(body))),
	}
}
