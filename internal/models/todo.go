package models

import "time"

// TaskRecord is a single stored to-do item. Records are never updated in
// place: they are created by add_task and removed in bulk per user.
type TaskRecord struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	Task      string    `json:"task"`
	CreatedAt time.Time `json:"created_at"`
}
