package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// Golden compares got against testdata/<name>.golden. With UPDATE_SNAPSHOTS=1
// the file is rewritten instead. A missing file is created on first run.
func Golden(t *testing.T, name, got string) {
	t.Helper()

	goldenPath := filepath.Join("testdata", name+".golden")

	if os.Getenv("UPDATE_SNAPSHOTS") == "1" {
		writeGolden(t, goldenPath, got)
		t.Logf("Updated snapshot: %s", goldenPath)
		return
	}

	want, err := os.ReadFile(goldenPath)
	if err != nil {
		if os.IsNotExist(err) {
			t.Logf("Snapshot file does not exist, creating: %s", goldenPath)
			writeGolden(t, goldenPath, got)
			return
		}
		t.Fatalf("Failed to read golden file %s: %v", goldenPath, err)
	}

	if string(want) != got {
		t.Errorf("output mismatch for %s\n\nExpected:\n%s\n\nGot:\n%s\n\nRun UPDATE_SNAPSHOTS=1 to update",
			name, want, got)
	}
}

func writeGolden(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("Failed to create testdata dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write golden file: %v", err)
	}
}
