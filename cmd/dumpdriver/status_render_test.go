package main

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"dumpdriver/internal/deps"
)

func TestRenderStatusLineNoColor(t *testing.T) {
	got := renderStatusLine("Outputs", statusError, "2 missing", false)
	want := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, "Outputs:", "[ERROR] 2 missing")
	if got != want {
		t.Fatalf("renderStatusLine mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestRenderStatusLineWithColor(t *testing.T) {
	got := renderStatusLine("Log bundle", statusOK, "game_logs.zip", true)
	if !strings.HasPrefix(got, ansiGreen) {
		t.Fatalf("expected green prefix, got %q", got)
	}
	if !strings.HasSuffix(got, ansiReset) {
		t.Fatalf("expected reset suffix, got %q", got)
	}
}

func TestShouldColorizeNonFile(t *testing.T) {
	if shouldColorize(io.Discard) {
		t.Fatalf("expected non-file writer to disable color")
	}
}

func TestRenderTablePadsShortRows(t *testing.T) {
	out := renderTable([]string{"ID", "Status"}, [][]string{{"1"}, {"2", "verified", "extra"}}, []columnAlignment{alignRight})
	requireContains(t, out, "verified")
	if strings.Contains(out, "extra") {
		t.Fatalf("expected extra cells dropped, got %q", out)
	}
	if renderTable(nil, nil, nil) != "" {
		t.Fatal("expected empty table without headers")
	}
}

func TestDependencyLines(t *testing.T) {
	statuses := []deps.Status{
		{Name: "Redumper", Command: "redumper", Available: false, Detail: `binary "redumper" not found`},
		{Name: "DiscImageCreator", Command: "DiscImageCreator", Available: true},
		{Name: "DiscImageCreator", Command: "dic", Optional: true, Detail: "not installed"},
	}
	lines := dependencyLines(statuses, false)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %v", len(lines), lines)
	}
	requireContains(t, lines[0], `[ERROR] binary "redumper" not found`)
	requireContains(t, lines[1], "[WARN] not installed")
}
