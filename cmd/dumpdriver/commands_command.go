package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"dumpdriver/internal/engine"
	"dumpdriver/internal/params"
)

type commandView struct {
	Command string   `json:"command" yaml:"command"`
	Dumping bool     `json:"dumping" yaml:"dumping"`
	Flags   []string `json:"flags" yaml:"flags"`
}

func newCommandsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "commands [engine]",
		Short: "Show the commands an engine accepts and the flags legal for each",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			var value string
			if len(args) == 1 {
				value = args[0]
			}
			id, err := resolveEngine(value, cfg)
			if err != nil {
				return err
			}

			grammar, err := engine.Grammar(id)
			if err != nil {
				return err
			}
			support := engine.CommandSupport(id)
			commands := make([]params.Command, 0, len(support))
			for command := range support {
				commands = append(commands, command)
			}
			slices.Sort(commands)

			views := make([]commandView, 0, len(commands))
			for _, command := range commands {
				set, err := params.NewSet(grammar, command)
				dumping := err == nil && engine.IsDumpingCommand(id, set)
				views = append(views, commandView{
					Command: displayCommand(command),
					Dumping: dumping,
					Flags:   append([]string{}, support[command]...),
				})
			}

			if handled, err := ctx.writeStructured(cmd, views); handled {
				return err
			}
			rows := make([][]string, 0, len(views))
			for _, view := range views {
				rows = append(rows, []string{view.Command, yesNo(view.Dumping), strings.Join(view.Flags, " ")})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", id.Name())
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Command", "Dumping", "Flags"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	}
}

func displayCommand(command params.Command) string {
	if command == params.Implicit {
		return "(implicit)"
	}
	return string(command)
}
