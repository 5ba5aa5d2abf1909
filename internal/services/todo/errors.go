package todo

import "errors"

// Todo-related errors
var (
	// Validation errors
	ErrEmptyUserID = errors.New("user_id cannot be empty")
	ErrEmptyTask   = errors.New("task cannot be empty")
	ErrTaskTooLong = errors.New("task cannot exceed 500 characters")
)
