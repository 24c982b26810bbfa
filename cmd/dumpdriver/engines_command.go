package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"dumpdriver/internal/deps"
	"dumpdriver/internal/engine"
)

type engineView struct {
	ID         string `json:"id" yaml:"id"`
	Name       string `json:"name" yaml:"name"`
	Executable string `json:"executable,omitempty" yaml:"executable,omitempty"`
	Path       string `json:"path,omitempty" yaml:"path,omitempty"`
	Available  bool   `json:"available" yaml:"available"`
	Default    bool   `json:"default" yaml:"default"`
	Detail     string `json:"detail,omitempty" yaml:"detail,omitempty"`
}

func newEnginesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "engines",
		Short: "List supported engines and whether their executables are installed",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			checked := deps.CheckBinaries(deps.EngineRequirements(cfg))
			statuses := make(map[string]deps.Status, len(checked))
			for _, status := range checked {
				statuses[status.Name] = status
			}

			views := make([]engineView, 0, len(engine.All()))
			for _, id := range engine.All() {
				view := engineView{
					ID:        string(id),
					Name:      id.Name(),
					Available: true,
					Default:   string(id) == cfg.Dump.Engine,
					Detail:    "operated outside dumpdriver; outputs verified only",
				}
				if status, ok := statuses[id.Name()]; ok {
					view.Executable = status.Command
					view.Path = status.Path
					view.Available = status.Available
					view.Detail = status.Detail
				}
				views = append(views, view)
			}

			if handled, err := ctx.writeStructured(cmd, views); handled {
				return err
			}
			rows := make([][]string, 0, len(views))
			for _, view := range views {
				executable := view.Executable
				if executable == "" {
					executable = "-"
				}
				rows = append(rows, []string{view.ID, view.Name, executable, yesNo(view.Available), yesNo(view.Default), view.Detail})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Engine", "Executable", "Available", "Default", "Detail"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignLeft},
			))

			for _, line := range dependencyLines(checked, shouldColorize(cmd.OutOrStdout())) {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			if len(deps.MissingRequired(checked)) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Install the default engine or point dic.binary / redumper.binary at it.")
			}
			return nil
		},
	}
}
