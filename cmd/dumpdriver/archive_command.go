package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"dumpdriver/internal/config"
	"dumpdriver/internal/engine"
	"dumpdriver/internal/fileutil"
	"dumpdriver/internal/history"
	"dumpdriver/internal/logging"
	"dumpdriver/internal/services"
	"dumpdriver/internal/target"
)

type archiveView struct {
	Engine   string   `json:"engine" yaml:"engine"`
	BasePath string   `json:"base_path" yaml:"base_path"`
	Bundle   string   `json:"bundle" yaml:"bundle"`
	Added    []string `json:"added,omitempty" yaml:"added,omitempty"`
	Removed  []string `json:"removed,omitempty" yaml:"removed,omitempty"`
	Copy     string   `json:"copy,omitempty" yaml:"copy,omitempty"`
}

func newArchiveCommand(ctx *commandContext) *cobra.Command {
	var flags targetFlags
	var keep bool
	var dest string

	cmd := &cobra.Command{
		Use:   "archive <base-path>",
		Short: "Bundle an engine run's logs into <base>_logs.zip",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			id, system, media, err := flags.resolve(cfg)
			if err != nil {
				return err
			}
			base, err := basePath(args[0])
			if err != nil {
				return err
			}
			opCtx := ctx.operationContext(cmd.Context(), string(id), "archive", base)
			logger := ctx.componentLogger(opCtx, "archive")

			view := archiveView{Engine: string(id), BasePath: base}
			runErr := runArchive(id, base, system, media, !keep, dest, &view)
			status := history.StatusVerified
			var errMessage string
			if runErr != nil {
				status = services.FailureStatus(runErr)
				errMessage = runErr.Error()
				logging.ErrorWithContext(logger, "archive failed", "archive_failed",
					logging.Error(runErr),
					logging.String(logging.FieldErrorHint, "check that no other dumpdriver process holds the bundle and the destination is writable"),
				)
			} else {
				logger.Info("logs archived",
					logging.String("bundle", view.Bundle),
					logging.Int("added", len(view.Added)),
					logging.Int("removed", len(view.Removed)),
				)
			}
			if err := ctx.withHistory(func(store *history.Store) error {
				ctx.record(opCtx, store, history.Record{
					Engine:    string(id),
					System:    string(system),
					Media:     string(media),
					BasePath:  base,
					Operation: history.OperationArchive,
					Status:    status,
					Error:     errMessage,
				})
				return nil
			}); err != nil {
				logger.Warn("history unavailable", logging.Error(err))
			}
			if runErr != nil {
				return runErr
			}

			if handled, err := ctx.writeStructured(cmd, view); handled {
				return err
			}
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			fmt.Fprintln(out, renderStatusLine("Log bundle", statusOK, fmt.Sprintf("%s (%d added, %d removed)", view.Bundle, len(view.Added), len(view.Removed)), colorize))
			if view.Copy != "" {
				fmt.Fprintln(out, renderStatusLine("Copied to", statusOK, view.Copy, colorize))
			}
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&keep, "keep", false, "Keep the original log files after bundling")
	cmd.Flags().StringVar(&dest, "dest", "", "Also copy the bundle into this directory, verifying the copy")
	return cmd
}

func runArchive(id engine.ID, base string, system target.System, media target.MediaType, removeOriginals bool, dest string, view *archiveView) error {
	result, err := engine.Archive(id, base, system, media, removeOriginals)
	if err != nil {
		return services.Wrap(services.ErrTransient, "archive", "write bundle", "Bundle logs", err)
	}
	if len(result.Added) == 0 && !fileutil.Exists(result.Bundle) {
		return services.Wrap(services.ErrNotFound, "archive", "collect logs", "No archivable log files found", nil)
	}
	view.Bundle = result.Bundle
	view.Added = result.Added
	view.Removed = result.Removed

	dest = strings.TrimSpace(dest)
	if dest == "" {
		return nil
	}
	dir, err := config.ExpandPath(dest)
	if err != nil {
		return services.Wrap(services.ErrValidation, "archive", "resolve destination", "Invalid --dest", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return services.Wrap(services.ErrConfiguration, "archive", "create destination", "Create --dest directory", err)
	}
	copyPath := filepath.Join(dir, filepath.Base(result.Bundle))
	if err := fileutil.CopyFileVerified(result.Bundle, copyPath); err != nil {
		return services.Wrap(services.ErrTransient, "archive", "copy bundle", "Copy bundle to destination", err)
	}
	view.Copy = copyPath
	return nil
}
