// Package database defines the task table contract and its backends
package database

import (
	"context"

	"github.com/thenoetrevino/chatdo/internal/models"
)

// TaskStore is the minimal CRUD surface over the to-do table.
// Implementations perform one blocking round trip per call and never retry.
type TaskStore interface {
	// Insert appends one record. Duplicates are allowed.
	Insert(ctx context.Context, userID, task string) error

	// DeleteAll removes every record owned by userID. Deleting nothing is
	// not an error.
	DeleteAll(ctx context.Context, userID string) error

	// SelectAll returns userID's records in store order, or every record
	// across all users when userID is empty.
	SelectAll(ctx context.Context, userID string) ([]*models.TaskRecord, error)

	// Close releases the underlying connection
	Close() error
}
