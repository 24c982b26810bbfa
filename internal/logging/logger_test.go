package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"dumpdriver/internal/config"
	"dumpdriver/internal/logging"
	"dumpdriver/internal/services"
)

func TestConsoleLineShape(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", Console: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logging.NewComponentLogger(logger, "manifest").Info("bundle written", logging.String("path", "/dumps/game_logs.zip"), logging.Int("files", 3))

	line := buf.String()
	if !strings.Contains(line, " INFO manifest: bundle written path=/dumps/game_logs.zip files=3") {
		t.Fatalf("unexpected console line %q", line)
	}
	if strings.Contains(line, "component=") {
		t.Fatalf("component should be rendered as a prefix, got %q", line)
	}
	if strings.Contains(line, ".go:") {
		t.Fatalf("expected no caller information in info logs, got %q", line)
	}
}

func TestConsoleQuotesValues(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Console: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Warn("parse failed", logging.String("raw", "cd D: game.bin"), logging.Error(errors.New("bad token")))

	line := buf.String()
	if !strings.Contains(line, `raw="cd D: game.bin"`) {
		t.Fatalf("expected quoted value, got %q", line)
	}
	if !strings.Contains(line, `error="bad token"`) {
		t.Fatalf("expected quoted error, got %q", line)
	}
}

func TestConsoleIncludesCallerForDebug(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "debug", Console: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Debug("message with caller")
	if !strings.Contains(buf.String(), "logger_test.go:") {
		t.Fatalf("expected caller information in debug logs, got %q", buf.String())
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "json", Console: &buf, SessionID: "abc-123"})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("verified", logging.String(logging.FieldEngine, "redumper"))

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("decode json line %q: %v", buf.String(), err)
	}
	if payload["msg"] != "verified" || payload["level"] != "info" {
		t.Fatalf("unexpected payload %v", payload)
	}
	if payload[logging.FieldSessionID] != "abc-123" {
		t.Fatalf("expected session id, got %v", payload)
	}
	if _, ok := payload["ts"]; !ok {
		t.Fatalf("expected ts key, got %v", payload)
	}
}

func TestFileReceivesJSON(t *testing.T) {
	var console bytes.Buffer
	logPath := filepath.Join(t.TempDir(), "logs", "run.log")
	logger, err := logging.New(logging.Options{Console: &console, FilePath: logPath})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("to both")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(content), `"msg":"to both"`) {
		t.Fatalf("expected json record in file, got %q", content)
	}
	if !strings.Contains(console.String(), "to both") {
		t.Fatalf("expected console record, got %q", console.String())
	}
}

func TestNewRejectsBadOptions(t *testing.T) {
	cases := []logging.Options{
		{Level: "loud"},
		{Format: "xml"},
		{ComponentOverrides: map[string]string{"cli": "trace"}},
	}
	for _, opts := range cases {
		opts.Console = &bytes.Buffer{}
		if _, err := logging.New(opts); err == nil {
			t.Fatalf("expected error for %+v", opts)
		}
	}
}

func TestComponentOverrides(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{
		Level:              "info",
		Console:            &buf,
		ComponentOverrides: map[string]string{"extract": "debug", "cli": "error"},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Debug("root debug")
	logging.NewComponentLogger(logger, "extract").Debug("extract debug")
	logging.NewComponentLogger(logger, "cli").Warn("cli warn")
	logging.NewComponentLogger(logger, "cli").Error("cli error")

	out := buf.String()
	if strings.Contains(out, "root debug") {
		t.Fatalf("root debug should be filtered, got %q", out)
	}
	if !strings.Contains(out, "extract: extract debug") {
		t.Fatalf("expected extract debug, got %q", out)
	}
	if strings.Contains(out, "cli warn") {
		t.Fatalf("cli warn should be filtered, got %q", out)
	}
	if !strings.Contains(out, "cli: cli error") {
		t.Fatalf("expected cli error, got %q", out)
	}
}

func TestWithLevelOverride(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Console: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	quiet := logging.WithLevelOverride(logger, slog.LevelError)
	quiet.Info("hidden")
	quiet.Error("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestNewFromConfigCreatesDailyFile(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.LogDir = t.TempDir()
	cfg.Logging.Level = "error"

	logger, err := logging.NewFromConfig(&cfg, "session-1")
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Error("persisted")

	content, err := os.ReadFile(logging.DailyLogPath(cfg.Paths.LogDir, time.Now()))
	if err != nil {
		t.Fatalf("read daily log: %v", err)
	}
	if !strings.Contains(string(content), `"session_id":"session-1"`) {
		t.Fatalf("expected session id in file, got %q", content)
	}
}

func TestWithContextAddsFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "json", Console: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	ctx := services.WithSessionID(context.Background(), "sess")
	ctx = services.WithEngine(ctx, "dic")
	ctx = services.WithStage(ctx, "verify")
	ctx = services.WithBasePath(ctx, "/dumps/game")

	logging.WithContext(ctx, logger).Info("checked")

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("decode json line: %v", err)
	}
	want := map[string]string{
		logging.FieldSessionID: "sess",
		logging.FieldEngine:    "dic",
		logging.FieldStage:     "verify",
		logging.FieldBasePath:  "/dumps/game",
	}
	for key, value := range want {
		if payload[key] != value {
			t.Fatalf("field %s = %v, want %q", key, payload[key], value)
		}
	}
}

func TestWarnWithContextInjectsDefaults(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "json", Console: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logging.WarnWithContext(logger, "outputs missing", "outputs_missing",
		logging.String(logging.FieldImpact, "dump cannot be submitted"),
	)

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("decode json line: %v", err)
	}
	if payload[logging.FieldEventType] != "outputs_missing" {
		t.Fatalf("unexpected event type %v", payload[logging.FieldEventType])
	}
	if payload[logging.FieldErrorHint] != "check logs for details" {
		t.Fatalf("unexpected hint %v", payload[logging.FieldErrorHint])
	}
	if payload[logging.FieldImpact] != "dump cannot be submitted" {
		t.Fatalf("impact should not be overwritten, got %v", payload[logging.FieldImpact])
	}
}

func TestNopLogger(t *testing.T) {
	logger := logging.NewNop()
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Fatal("nop logger should not be enabled")
	}
	logging.ErrorWithContext(nil, "ignored", "noop")
}
