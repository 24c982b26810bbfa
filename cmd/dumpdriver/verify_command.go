package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"dumpdriver/internal/engine"
	"dumpdriver/internal/history"
	"dumpdriver/internal/logging"
	"dumpdriver/internal/services"
	"dumpdriver/internal/target"
)

type verifyView struct {
	Engine     string   `json:"engine" yaml:"engine"`
	BasePath   string   `json:"base_path" yaml:"base_path"`
	AllPresent bool     `json:"all_present" yaml:"all_present"`
	Missing    []string `json:"missing,omitempty" yaml:"missing,omitempty"`
	Bundle     string   `json:"bundle,omitempty" yaml:"bundle,omitempty"`
	Archived   []string `json:"archived,omitempty" yaml:"archived,omitempty"`
	Deleted    []string `json:"deleted,omitempty" yaml:"deleted,omitempty"`
}

func newVerifyCommand(ctx *commandContext) *cobra.Command {
	var flags targetFlags
	var noPrecheck bool
	var archive bool
	var deleteIntermediates bool

	cmd := &cobra.Command{
		Use:   "verify <base-path>",
		Short: "Check that an engine run left every required output file",
		Long: `Check that an engine run left every required output file.

The base path is the output image path with or without its extension. When
every required file is present, logs can be moved into <base>_logs.zip and
intermediate files removed. Bundled logs still count as present on later
checks unless --no-precheck is given.`,
		Args: cobra.ExactArgs(1),
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
			if !cmd.Flags().Changed("archive") {
				archive = cfg.Dump.ArchiveLogs
			}
			if !cmd.Flags().Changed("delete-intermediates") {
				deleteIntermediates = cfg.Dump.DeleteIntermediates
			}

			opCtx := ctx.operationContext(cmd.Context(), string(id), "verify", base)
			logger := ctx.componentLogger(opCtx, "verify")

			view := verifyView{Engine: string(id), BasePath: base}
			runErr := runVerify(id, base, system, media, !noPrecheck, archive, deleteIntermediates, &view)

			status := history.StatusVerified
			var errMessage string
			if runErr != nil {
				status = services.FailureStatus(runErr)
				errMessage = runErr.Error()
				logging.WarnWithContext(logger, "verification incomplete", "verify_incomplete",
					logging.Int("missing", len(view.Missing)),
					logging.Paths("missing_paths", view.Missing),
					logging.Error(runErr),
					logging.String(logging.FieldErrorHint, "re-run the engine or restore the missing files"),
					logging.String(logging.FieldImpact, "dump is not ready for submission"),
				)
			} else {
				logger.Info("verification passed",
					logging.Int("archived", len(view.Archived)),
					logging.Int("deleted", len(view.Deleted)),
				)
			}
			if err := ctx.withHistory(func(store *history.Store) error {
				ctx.record(opCtx, store, history.Record{
					Engine:    string(id),
					System:    string(system),
					Media:     string(media),
					BasePath:  base,
					Operation: history.OperationVerify,
					Status:    status,
					Missing:   view.Missing,
					Error:     errMessage,
				})
				return nil
			}); err != nil {
				logger.Warn("history unavailable", logging.Error(err))
			}

			if handled, err := ctx.writeStructured(cmd, view); handled {
				if err != nil {
					return err
				}
				return runErr
			}
			renderVerify(cmd, view)
			return runErr
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&noPrecheck, "no-precheck", false, "Do not look inside an existing log bundle")
	cmd.Flags().BoolVar(&archive, "archive", false, "Bundle logs after a successful check (defaults to dump.archive_logs)")
	cmd.Flags().BoolVar(&deleteIntermediates, "delete-intermediates", false, "Remove intermediate files after a successful check (defaults to dump.delete_intermediates)")
	return cmd
}

func runVerify(id engine.ID, base string, system target.System, media target.MediaType, precheck, archive, deleteIntermediates bool, view *verifyView) error {
	result := engine.CheckAllPresent(id, base, system, media, precheck)
	view.AllPresent = result.AllPresent
	view.Missing = result.Missing
	if !result.AllPresent {
		return services.Wrap(services.ErrNotFound, "verify", "check outputs",
			fmt.Sprintf("%d required output file(s) missing", len(result.Missing)), nil)
	}
	if archive {
		archived, err := engine.Archive(id, base, system, media, true)
		if err != nil {
			return services.Wrap(services.ErrTransient, "verify", "archive logs", "Bundle logs", err)
		}
		if len(archived.Added) > 0 {
			view.Bundle = archived.Bundle
			view.Archived = archived.Added
		}
	}
	if deleteIntermediates {
		if !archive {
			return services.Wrap(services.ErrConfiguration, "verify", "delete intermediates", "Deleting intermediates requires archiving logs", nil)
		}
		deleted, err := engine.Delete(id, base, system, media)
		view.Deleted = deleted
		if err != nil {
			return services.Wrap(services.ErrTransient, "verify", "delete intermediates", "Remove intermediate files", err)
		}
	}
	return nil
}

func renderVerify(cmd *cobra.Command, view verifyView) {
	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)
	if view.AllPresent {
		fmt.Fprintln(out, renderStatusLine("Outputs", statusOK, view.BasePath, colorize))
	} else {
		fmt.Fprintln(out, renderStatusLine("Outputs", statusError, fmt.Sprintf("%d missing", len(view.Missing)), colorize))
		for _, path := range view.Missing {
			fmt.Fprintln(out, renderStatusLine("Missing", statusWarn, path, colorize))
		}
	}
	if view.Bundle != "" {
		fmt.Fprintln(out, renderStatusLine("Log bundle", statusInfo, fmt.Sprintf("%s (%d added)", view.Bundle, len(view.Archived)), colorize))
	}
	for _, path := range view.Deleted {
		fmt.Fprintln(out, renderStatusLine("Deleted", statusInfo, path, colorize))
	}
}
