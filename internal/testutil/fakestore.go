package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/thenoetrevino/chatdo/internal/database"
	"github.com/thenoetrevino/chatdo/internal/models"
)

// FakeStore is an in-memory implementation of database.TaskStore for testing
type FakeStore struct {
	mu     sync.RWMutex
	rows   []*models.TaskRecord
	nextID int64

	// Error injection for testing
	InsertErr    error
	DeleteAllErr error
	SelectAllErr error

	// Calls counts every operation that reached the store
	Calls int
}

var _ database.TaskStore = (*FakeStore)(nil)

// NewFakeStore creates an empty FakeStore
func NewFakeStore() *FakeStore {
	return &FakeStore{nextID: 1}
}

// Insert implements database.TaskStore
func (f *FakeStore) Insert(ctx context.Context, userID, task string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls++
	if f.InsertErr != nil {
		return f.InsertErr
	}
	f.rows = append(f.rows, &models.TaskRecord{
		ID:        f.nextID,
		UserID:    userID,
		Task:      task,
		CreatedAt: time.Date(2025, 1, 1, 0, 0, int(f.nextID), 0, time.UTC),
	})
	f.nextID++
	return nil
}

// DeleteAll implements database.TaskStore
func (f *FakeStore) DeleteAll(ctx context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls++
	if f.DeleteAllErr != nil {
		return f.DeleteAllErr
	}
	kept := f.rows[:0]
	for _, r := range f.rows {
		if r.UserID != userID {
			kept = append(kept, r)
		}
	}
	f.rows = kept
	return nil
}

// SelectAll implements database.TaskStore
func (f *FakeStore) SelectAll(ctx context.Context, userID string) ([]*models.TaskRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls++
	if f.SelectAllErr != nil {
		return nil, f.SelectAllErr
	}
	out := []*models.TaskRecord{}
	for _, r := range f.rows {
		if userID == "" || r.UserID == userID {
			copied := *r
			out = append(out, &copied)
		}
	}
	return out, nil
}

// Close implements database.TaskStore
func (f *FakeStore) Close() error {
	return nil
}

// Len returns the number of stored rows
func (f *FakeStore) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.rows)
}
