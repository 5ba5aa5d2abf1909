package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/chatdo/internal/models"
)

// SQLiteStore keeps the to-do table in a local SQLite file
type SQLiteStore struct {
	db *sql.DB
}

var _ TaskStore = (*SQLiteStore)(nil)

// NewSQLiteStore wraps an initialized database (see InitDB)
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// OpenSQLiteStore initializes the database at path and wraps it
func OpenSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := InitDB(ctx, path)
	if err != nil {
		return nil, err
	}
	return NewSQLiteStore(db), nil
}

// Insert implements TaskStore
func (s *SQLiteStore) Insert(ctx context.Context, userID, task string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO todos (user_id, task) VALUES (?, ?)`,
		userID, task,
	)
	if err != nil {
		return fmt.Errorf("insert todo: %w", err)
	}
	return nil
}

// DeleteAll implements TaskStore
func (s *SQLiteStore) DeleteAll(ctx context.Context, userID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM todos WHERE user_id = ?`, userID)
	if err != nil {
		return fmt.Errorf("delete todos: %w", err)
	}
	return nil
}

// SelectAll implements TaskStore. Rows come back in insertion order.
func (s *SQLiteStore) SelectAll(ctx context.Context, userID string) ([]*models.TaskRecord, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if userID == "" {
		rows, err = s.db.QueryContext(ctx,
			`SELECT id, user_id, task, created_at FROM todos ORDER BY id`)
	} else {
		rows, err = s.db.QueryContext(ctx,
			`SELECT id, user_id, task, created_at FROM todos WHERE user_id = ? ORDER BY id`,
			userID,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("select todos: %w", err)
	}
	defer func() { _ = rows.Close() }()

	records := []*models.TaskRecord{}
	for rows.Next() {
		record := &models.TaskRecord{}
		if err := rows.Scan(&record.ID, &record.UserID, &record.Task, &record.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan todo: %w", err)
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// Close implements TaskStore
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
