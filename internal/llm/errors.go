package llm

import (
	"errors"
	"fmt"
)

// ErrNoChoices is returned when the backend answers without any choice
var ErrNoChoices = errors.New("completion returned no choices")

type errorResponse struct {
	Error *APIError `json:"error,omitempty"`
}

// APIError is the error object of an OpenAI-compatible endpoint
type APIError struct {
	Code           any    `json:"code,omitempty"`
	Message        string `json:"message,omitempty"`
	Type           string `json:"type,omitempty"`
	Status         string `json:"status,omitempty"`
	HTTPStatusCode int    `json:"-"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("llm error: status %d", e.HTTPStatusCode)
	}
	return fmt.Sprintf("llm error %d: %s", e.HTTPStatusCode, e.Message)
}
