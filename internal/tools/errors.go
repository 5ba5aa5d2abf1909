package tools

import "errors"

// Tool dispatch errors
var (
	// Decoding errors
	ErrUnknownTool  = errors.New("unknown tool")
	ErrBadArguments = errors.New("malformed tool arguments")

	// Validation errors
	ErrMissingUserID = errors.New("user_id is required")
	ErrMissingTask   = errors.New("task is required")
)
