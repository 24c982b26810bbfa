package logging_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"dumpdriver/internal/logging"
)

func TestCleanupOldLogs(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	old := now.AddDate(0, 0, -40)

	stale := logging.DailyLogPath(dir, old)
	current := logging.DailyLogPath(dir, now)
	unrelated := filepath.Join(dir, "notes.txt")
	for _, path := range []string{stale, current, unrelated} {
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
		if err := os.Chtimes(path, old, old); err != nil {
			t.Fatal(err)
		}
	}

	removed := logging.CleanupOldLogs(logging.NewNop(), 30, logging.DefaultRetentionTargets(dir, now)...)
	if removed != 1 {
		t.Fatalf("expected one file removed, got %d", removed)
	}
	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Fatalf("expected stale log removed, stat err=%v", err)
	}
	for _, path := range []string{current, unrelated} {
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("expected %s kept: %v", path, err)
		}
	}
}

func TestCleanupOldLogsDisabled(t *testing.T) {
	dir := t.TempDir()
	old := time.Now().AddDate(-1, 0, 0)
	path := logging.DailyLogPath(dir, old)
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Chtimes(path, old, old); err != nil {
		t.Fatal(err)
	}
	if removed := logging.CleanupOldLogs(nil, 0, logging.DefaultRetentionTargets(dir, time.Now())...); removed != 0 {
		t.Fatalf("expected retention disabled, removed %d", removed)
	}
	if logging.DefaultRetentionTargets("", time.Now()) != nil {
		t.Fatal("expected no targets without a log dir")
	}
}
