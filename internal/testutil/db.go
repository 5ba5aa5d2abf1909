package testutil

import (
	"bytes"
	"context"
	"io"
	"os"
	"testing"

	"github.com/thenoetrevino/chatdo/internal/database"
)

// CaptureOutput captures stdout during function execution
func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()

	// Save original stdout
	oldStdout := os.Stdout

	// Create pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}

	// Replace stdout with pipe writer
	os.Stdout = w

	// Channel to collect output
	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	// Execute function
	fn()

	// Close writer and restore stdout
	_ = w.Close()
	os.Stdout = oldStdout

	// Get captured output
	return <-outC
}

// SetupTestDB creates an in-memory SQLite task store with the full schema.
// The store is closed when the test ends.
func SetupTestDB(t *testing.T) *database.SQLiteStore {
	t.Helper()
	store, err := database.OpenSQLiteStore(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// SeedTasks inserts user_id/task pairs in order
func SeedTasks(t *testing.T, store database.TaskStore, pairs ...[2]string) {
	t.Helper()
	for _, p := range pairs {
		if err := store.Insert(context.Background(), p[0], p[1]); err != nil {
			t.Fatalf("Failed to seed task %q for %s: %v", p[1], p[0], err)
		}
	}
}
