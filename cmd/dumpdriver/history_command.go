package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"dumpdriver/internal/history"
	"dumpdriver/internal/services"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect and manage the local dump history",
	}

	historyCmd.AddCommand(newHistoryListCommand(ctx))
	historyCmd.AddCommand(newHistoryShowCommand(ctx))
	historyCmd.AddCommand(newHistoryStatsCommand(ctx))
	historyCmd.AddCommand(newHistoryPruneCommand(ctx))
	historyCmd.AddCommand(newHistoryClearCommand(ctx))

	return historyCmd
}

var errHistoryDisabled = services.Wrap(services.ErrConfiguration, "history", "open", "History is disabled; set history.enabled = true", nil)

func requireHistory(ctx *commandContext, fn func(*history.Store) error) error {
	return ctx.withHistory(func(store *history.Store) error {
		if store == nil {
			return errHistoryDisabled
		}
		return fn(store)
	})
}

func newHistoryListCommand(ctx *commandContext) *cobra.Command {
	var engineFlag, statusFlag, baseFlag, sinceFlag string
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded runs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := history.Filter{
				Engine: strings.TrimSpace(engineFlag),
				Limit:  limit,
			}
			if statusFlag != "" {
				status, err := history.ParseStatus(statusFlag)
				if err != nil {
					return services.Wrap(services.ErrValidation, "history", "list", "Invalid --status", err)
				}
				filter.Status = status
			}
			if baseFlag != "" {
				base, err := basePath(baseFlag)
				if err != nil {
					return err
				}
				filter.BasePath = base
			}
			if sinceFlag != "" {
				since, err := parseSince(sinceFlag, time.Now())
				if err != nil {
					return err
				}
				filter.Since = since
			}

			return requireHistory(ctx, func(store *history.Store) error {
				records, err := store.List(cmd.Context(), filter)
				if err != nil {
					return err
				}
				if records == nil {
					records = []*history.Record{}
				}
				if handled, err := ctx.writeStructured(cmd, records); handled {
					return err
				}
				if len(records) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "History is empty")
					return nil
				}
				rows := make([][]string, 0, len(records))
				for _, record := range records {
					rows = append(rows, []string{
						strconv.FormatInt(record.ID, 10),
						record.CreatedAt.Local().Format("2006-01-02 15:04"),
						string(record.Operation),
						record.Engine,
						string(record.Status),
						record.BasePath,
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"ID", "When", "Operation", "Engine", "Status", "Base path"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft, alignLeft},
				))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&engineFlag, "engine", "", "Only runs of this engine")
	cmd.Flags().StringVar(&statusFlag, "status", "", "Only runs with this status (verified, review, failed)")
	cmd.Flags().StringVar(&baseFlag, "base", "", "Only runs for this base path")
	cmd.Flags().StringVar(&sinceFlag, "since", "", "Only runs newer than a duration (72h) or date (2006-01-02)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum rows; 0 lists everything")
	return cmd
}

// parseSince accepts a Go duration relative to now or a calendar date.
func parseSince(value string, now time.Time) (time.Time, error) {
	value = strings.TrimSpace(value)
	if d, err := time.ParseDuration(value); err == nil {
		if d < 0 {
			d = -d
		}
		return now.Add(-d), nil
	}
	if day, err := time.ParseInLocation("2006-01-02", value, time.Local); err == nil {
		return day, nil
	}
	return time.Time{}, services.Wrap(services.ErrValidation, "history", "parse since", fmt.Sprintf("Invalid --since %q; use a duration like 72h or a date like 2006-01-02", value), nil)
}

func newHistoryShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one recorded run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(strings.TrimSpace(args[0]), 10, 64)
			if err != nil || id <= 0 {
				return services.Wrap(services.ErrValidation, "history", "show", fmt.Sprintf("Invalid record id %q", args[0]), nil)
			}
			return requireHistory(ctx, func(store *history.Store) error {
				record, err := store.Get(cmd.Context(), id)
				if err != nil {
					return err
				}
				if record == nil {
					return services.Wrap(services.ErrNotFound, "history", "show", fmt.Sprintf("Record %d not found", id), nil)
				}
				if handled, err := ctx.writeStructured(cmd, record); handled {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "ID:        %d\n", record.ID)
				fmt.Fprintf(out, "Session:   %s\n", record.SessionID)
				fmt.Fprintf(out, "When:      %s\n", record.CreatedAt.Local().Format(time.RFC3339))
				fmt.Fprintf(out, "Operation: %s\n", record.Operation)
				fmt.Fprintf(out, "Engine:    %s\n", record.Engine)
				fmt.Fprintf(out, "Status:    %s\n", record.Status)
				fmt.Fprintf(out, "Base path: %s\n", record.BasePath)
				if record.System != "" || record.Media != "" {
					fmt.Fprintf(out, "Target:    %s / %s\n", record.System, record.Media)
				}
				for _, path := range record.Missing {
					fmt.Fprintf(out, "Missing:   %s\n", path)
				}
				if record.Error != "" {
					fmt.Fprintf(out, "Error:     %s\n", record.Error)
				}
				if len(record.Metadata) > 0 {
					fmt.Fprintf(out, "Metadata:  %s\n", record.Metadata)
				}
				return nil
			})
		},
	}
}

func newHistoryStatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Count recorded runs by status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return requireHistory(ctx, func(store *history.Store) error {
				stats, err := store.Stats(cmd.Context())
				if err != nil {
					return err
				}
				if handled, err := ctx.writeStructured(cmd, stats); handled {
					return err
				}
				rows := make([][]string, 0, 3)
				for _, status := range []history.Status{history.StatusVerified, history.StatusReview, history.StatusFailed} {
					rows = append(rows, []string{string(status), strconv.Itoa(stats[status])})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Status", "Count"}, rows, []columnAlignment{alignLeft, alignRight}))
				return nil
			})
		},
	}
}

func newHistoryPruneCommand(ctx *commandContext) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Remove runs older than the retention window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("days") {
				days = cfg.History.RetentionDays
			}
			if days <= 0 {
				return services.Wrap(services.ErrValidation, "history", "prune", "Retention is disabled; pass --days", nil)
			}
			return requireHistory(ctx, func(store *history.Store) error {
				removed, err := store.PruneRetention(cmd.Context(), days, time.Now())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %d record(s) older than %d day(s)\n", removed, days)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&days, "days", 0, "Retention window in days (defaults to history.retention_days)")
	return cmd
}

func newHistoryClearCommand(ctx *commandContext) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every recorded run",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return errors.New("refusing to clear history without --force")
			}
			return requireHistory(ctx, func(store *history.Store) error {
				removed, err := store.Clear(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %d record(s)\n", removed)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Confirm removal of all history")
	return cmd
}
