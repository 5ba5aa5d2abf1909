package agent

import "errors"

// Interpreter errors
var (
	ErrToolFailed = errors.New("tool execution failed")
	ErrEmptyReply = errors.New("interpreter returned an empty reply")
	ErrMaxTurns   = errors.New("interpreter exceeded the maximum number of turns")
)
