package database

import (
	"context"
	"database/sql"
	"fmt"
)

// runMigrations creates the to-do table if needed. The table name is fixed
// to match the hosted deployment.
func runMigrations(ctx context.Context, db *sql.DB) error {
	// Create todos table
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS todos (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id TEXT NOT NULL,
			task TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("create todos: %w", err)
	}

	// Create index for per-user queries
	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_todos_user
		ON todos(user_id, id)
	`)
	if err != nil {
		return fmt.Errorf("create idx_todos_user: %w", err)
	}

	return nil
}
