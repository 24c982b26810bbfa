package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"dumpdriver/internal/config"
	"dumpdriver/internal/history"
	"dumpdriver/internal/logging"
	"dumpdriver/internal/services"
)

var errOutputFlags = errors.New("--json and --yaml are mutually exclusive")

type commandContext struct {
	configFlag *string
	jsonFlag   *bool
	yamlFlag   *bool

	configOnce sync.Once
	config     *config.Config
	configErr  error

	sessionID string
	logger    *slog.Logger
}

func newCommandContext(configFlag *string, jsonFlag, yamlFlag *bool) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		jsonFlag:   jsonFlag,
		yamlFlag:   yamlFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// startSession assigns the session ID, builds the logger, and prunes logs
// past retention. A logger failure falls back to a no-op logger.
func (c *commandContext) startSession(cmd *cobra.Command) {
	c.sessionID = uuid.NewString()
	logger, err := logging.NewFromConfig(c.config, c.sessionID)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "logging disabled: %v\n", err)
		logger = logging.NewNop()
	}
	c.logger = logger
	if c.config != nil {
		logging.CleanupOldLogs(
			logging.NewComponentLogger(logger, "retention"),
			c.config.Logging.RetentionDays,
			logging.DefaultRetentionTargets(c.config.Paths.LogDir, time.Now())...,
		)
	}
}

// componentLogger returns a logger tagged with component and any context
// fields carried by ctx.
func (c *commandContext) componentLogger(ctx context.Context, component string) *slog.Logger {
	logger := c.logger
	if logger == nil {
		logger = logging.NewNop()
	}
	return logging.WithContext(ctx, logging.NewComponentLogger(logger, component))
}

// operationContext tags ctx with the session, engine, stage, and base path.
func (c *commandContext) operationContext(ctx context.Context, engineID, stage, base string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if c.sessionID != "" {
		ctx = services.WithSessionID(ctx, c.sessionID)
	}
	ctx = services.WithEngine(ctx, engineID)
	ctx = services.WithStage(ctx, stage)
	return services.WithBasePath(ctx, base)
}

// withHistory opens the history store when enabled and runs fn. fn receives
// nil when history is disabled.
func (c *commandContext) withHistory(fn func(*history.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	if !cfg.History.Enabled {
		return fn(nil)
	}
	store, err := history.Open(cfg)
	if err != nil {
		return services.Wrap(services.ErrConfiguration, "history", "open", "Open dump history", err)
	}
	defer store.Close()
	return fn(store)
}

// record appends a history row, logging instead of failing when the write
// does not succeed.
func (c *commandContext) record(ctx context.Context, store *history.Store, rec history.Record) {
	if store == nil {
		return
	}
	rec.SessionID = c.sessionID
	if _, err := store.Add(ctx, rec); err != nil {
		logging.WarnWithContext(c.componentLogger(ctx, "history"), "history write failed; run not recorded", "history_write_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check state_dir permissions or run 'dumpdriver history clear'"),
			logging.String(logging.FieldImpact, "this run is missing from dump history"),
		)
	}
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
