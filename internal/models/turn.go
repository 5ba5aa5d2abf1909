package models

// Role identifies who authored a chat turn
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one entry of the session chat transcript
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}
