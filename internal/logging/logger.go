package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"dumpdriver/internal/config"
)

// Options describes logger construction parameters.
type Options struct {
	Level  string
	Format string
	// Console receives the console or JSON stream. Nil means stderr.
	Console io.Writer
	// FilePath, when set, additionally receives every record as JSON.
	FilePath           string
	SessionID          string
	ComponentOverrides map[string]string
	Development        bool
}

// New constructs a slog logger using the provided options.
func New(opts Options) (*slog.Logger, error) {
	level, err := parseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	overrides := make(map[string]slog.Level, len(opts.ComponentOverrides))
	floor := level
	for component, value := range opts.ComponentOverrides {
		parsed, err := parseLevel(value)
		if err != nil {
			return nil, fmt.Errorf("component %s: %w", component, err)
		}
		overrides[strings.ToLower(strings.TrimSpace(component))] = parsed
		floor = min(floor, parsed)
	}

	addSource := opts.Development || level <= slog.LevelDebug
	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if format == "" {
		format = "console"
	}

	var consoleHandler slog.Handler
	switch format {
	case "json":
		consoleHandler = newJSONHandler(console, floor, addSource)
	case "console":
		consoleHandler = newPrettyHandler(console, floor, addSource)
	default:
		return nil, fmt.Errorf("log format: unsupported value %q", opts.Format)
	}

	var fileHandler slog.Handler
	if path := strings.TrimSpace(opts.FilePath); path != "" {
		file, err := openLogFile(path)
		if err != nil {
			return nil, err
		}
		fileHandler = newJSONHandler(file, floor, addSource)
	}

	handler := newFanoutHandler(consoleHandler, fileHandler)
	if id := strings.TrimSpace(opts.SessionID); id != "" {
		handler = newSessionHandler(handler, id)
	}
	return slog.New(newComponentLevelHandler(handler, level, overrides)), nil
}

// NewFromConfig creates a logger from the [logging] and [paths] sections.
// Records also go to the day's JSON log file in the log directory.
func NewFromConfig(cfg *config.Config, sessionID string) (*slog.Logger, error) {
	if cfg == nil {
		return New(Options{Level: "info", Format: "console", SessionID: sessionID})
	}
	opts := Options{
		Level:              cfg.Logging.Level,
		Format:             cfg.Logging.Format,
		SessionID:          sessionID,
		ComponentOverrides: cfg.Logging.ComponentOverrides,
	}
	if cfg.Paths.LogDir != "" {
		opts.FilePath = DailyLogPath(cfg.Paths.LogDir, time.Now())
	}
	return New(opts)
}

// DailyLogPath names the JSON log file for the given day.
func DailyLogPath(dir string, day time.Time) string {
	return filepath.Join(dir, "dumpdriver-"+day.Format("20060102")+".log")
}

func parseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("log level: unsupported value %q", level)
	}
}

func openLogFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("ensure log directory: %w", err)
		}
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	return file, nil
}
