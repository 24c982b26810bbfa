package main

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"dumpdriver/internal/history"
	"dumpdriver/internal/services"
	"dumpdriver/internal/testsupport"
)

func TestHistoryRecordsVerifyRuns(t *testing.T) {
	env := setupCLITestEnv(t)
	base := cleanRipDump(t, env, false)
	verifyArgs := []string{"verify", "-e", "cleanrip", "-s", "nintendo_wii", "-m", "nintendo_wii_disc", base}

	if _, _, err := runCLI(t, verifyArgs, env.configPath); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected missing outputs, got %v", err)
	}
	testsupport.WriteOutputs(t, base, ".bca")
	if _, _, err := runCLI(t, verifyArgs, env.configPath); err != nil {
		t.Fatalf("verify: %v", err)
	}

	out, _, err := runCLI(t, []string{"--json", "history", "list"}, env.configPath)
	if err != nil {
		t.Fatalf("history list: %v", err)
	}
	var records []history.Record
	if err := json.Unmarshal([]byte(out), &records); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Status != history.StatusVerified || records[1].Status != history.StatusReview {
		t.Fatalf("unexpected statuses %q, %q", records[0].Status, records[1].Status)
	}
	if records[1].SessionID == "" || records[0].SessionID == records[1].SessionID {
		t.Fatalf("expected distinct session IDs, got %q and %q", records[0].SessionID, records[1].SessionID)
	}
	if len(records[1].Missing) != 1 || records[1].Missing[0] != base+".bca" {
		t.Fatalf("unexpected missing list %v", records[1].Missing)
	}

	out, _, err = runCLI(t, []string{"history", "list", "--status", "review"}, env.configPath)
	if err != nil {
		t.Fatalf("history list --status: %v", err)
	}
	requireContains(t, out, "review")
	requireContains(t, out, "verify")

	out, _, err = runCLI(t, []string{"history", "show", strconv.FormatInt(records[1].ID, 10)}, env.configPath)
	if err != nil {
		t.Fatalf("history show: %v", err)
	}
	requireContains(t, out, "Missing:   "+base+".bca")
}

func TestHistoryMarksEmptyExtractForReview(t *testing.T) {
	env := setupCLITestEnv(t)
	base := cleanRipDump(t, env, false)
	empty := filepath.Join(env.baseDir, "blank", "disc")
	extractArgs := func(base string) []string {
		return []string{"extract", "-e", "cleanrip", "-s", "nintendo_wii", "-m", "nintendo_wii_disc", "--no-hash", base}
	}

	if _, _, err := runCLI(t, extractArgs(base), env.configPath); err != nil {
		t.Fatalf("extract: %v", err)
	}
	out, _, err := runCLI(t, extractArgs(empty), env.configPath)
	if err != nil {
		t.Fatalf("extract empty: %v", err)
	}
	requireContains(t, out, "No metadata found")

	out, _, err = runCLI(t, []string{"--json", "history", "list"}, env.configPath)
	if err != nil {
		t.Fatalf("history list: %v", err)
	}
	var records []history.Record
	if err := json.Unmarshal([]byte(out), &records); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].BasePath != empty || records[0].Status != history.StatusReview {
		t.Fatalf("expected empty extract marked for review, got %+v", records[0])
	}
	if records[1].BasePath != base || records[1].Status != history.StatusVerified {
		t.Fatalf("expected populated extract verified, got %+v", records[1])
	}
}

func TestHistoryShowUnknownRecord(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"history", "show", "42"}, env.configPath)
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
	_, _, err = runCLI(t, []string{"history", "show", "abc"}, env.configPath)
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestHistoryPruneAndClear(t *testing.T) {
	env := setupCLITestEnv(t)
	store := testsupport.MustOpenHistory(t, env.cfg)
	testsupport.AddRecord(t, store, history.Record{
		Engine:    "redumper",
		BasePath:  "/dumps/old",
		Operation: history.OperationVerify,
		Status:    history.StatusVerified,
		CreatedAt: time.Now().AddDate(0, 0, -30),
	})
	testsupport.AddRecord(t, store, history.Record{
		Engine:    "redumper",
		BasePath:  "/dumps/new",
		Operation: history.OperationVerify,
		Status:    history.StatusFailed,
	})
	if err := store.Close(); err != nil {
		t.Fatalf("close store: %v", err)
	}

	out, _, err := runCLI(t, []string{"history", "prune", "--days", "7"}, env.configPath)
	if err != nil {
		t.Fatalf("history prune: %v", err)
	}
	requireContains(t, out, "Removed 1 record(s) older than 7 day(s)")

	out, _, err = runCLI(t, []string{"history", "stats"}, env.configPath)
	if err != nil {
		t.Fatalf("history stats: %v", err)
	}
	requireContains(t, out, "failed")

	if _, _, err := runCLI(t, []string{"history", "clear"}, env.configPath); err == nil {
		t.Fatal("expected clear without --force to fail")
	}
	out, _, err = runCLI(t, []string{"history", "clear", "--force"}, env.configPath)
	if err != nil {
		t.Fatalf("history clear: %v", err)
	}
	requireContains(t, out, "Removed 1 record(s)")
}

func TestHistoryDisabled(t *testing.T) {
	env := setupCLITestEnv(t)
	env.cfg.History.Enabled = false
	writeTestConfig(t, env.configPath, env.cfg)

	_, _, err := runCLI(t, []string{"history", "list"}, env.configPath)
	if !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestParseSince(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	got, err := parseSince("72h", now)
	if err != nil || !got.Equal(now.Add(-72*time.Hour)) {
		t.Fatalf("parseSince(72h) = %v, %v", got, err)
	}
	got, err = parseSince("2026-03-01", now)
	if err != nil || !got.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)) {
		t.Fatalf("parseSince(date) = %v, %v", got, err)
	}
	if _, err := parseSince("last week", now); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestHistoryShowYAMLDecodesMetadata(t *testing.T) {
	env := setupCLITestEnv(t)
	store := testsupport.MustOpenHistory(t, env.cfg)
	added := testsupport.AddRecord(t, store, history.Record{
		Engine:    "ps3cfw",
		BasePath:  "/dumps/BLUS30001",
		Operation: history.OperationExtract,
		Status:    history.StatusVerified,
		Metadata:  []byte(`{"disc_key":"ABCD"}`),
	})
	if err := store.Close(); err != nil {
		t.Fatalf("close store: %v", err)
	}

	out, _, err := runCLI(t, []string{"--yaml", "history", "show", strconv.FormatInt(added.ID, 10)}, env.configPath)
	if err != nil {
		t.Fatalf("history show: %v", err)
	}
	requireContains(t, out, "base_path: /dumps/BLUS30001")
	requireContains(t, out, "disc_key: ABCD")
}
