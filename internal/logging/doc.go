// Package logging assembles structured slog loggers and formatting helpers used
// across dumpdriver.
//
// It owns the configurable console/JSON handlers, the daily JSON log file in
// the configured log directory, per-component level overrides, and
// context-aware helpers that tag log lines with the session ID, engine,
// stage, and dump base path. The package also provides a no-op logger for
// tests and wiring code that cannot fail.
package logging
