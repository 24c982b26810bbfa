package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"dumpdriver/internal/engine"
	"dumpdriver/internal/logging"
	"dumpdriver/internal/params"
	"dumpdriver/internal/services"
)

func newParseCommand(ctx *commandContext) *cobra.Command {
	var engineFlag string
	var lineFlag string

	cmd := &cobra.Command{
		Use:   "parse [flags] -- <arguments...>",
		Short: "Parse an engine command line back into its structured form",
		Long: `Parse an engine command line back into its structured form.

Pass the arguments after "--" so engine flags are not read as dumpdriver
flags. The executable name must not be included. Use --line to pass the
command line as one string when quoted values must survive the shell.`,
		Example: `  dumpdriver parse -e dic -- cd D: "C:\dumps\game.bin" 8 /c2 20 /q
  dumpdriver parse -e redumper -- disc --drive=/dev/sr0 --image-name=game
  dumpdriver parse -e dic --line 'cd D: "C:\my dumps\game.bin" 8 /q'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			id, err := resolveEngine(engineFlag, cfg)
			if err != nil {
				return err
			}
			raw := strings.Join(args, " ")
			if cmd.Flags().Changed("line") {
				if len(args) > 0 {
					return services.Wrap(services.ErrValidation, "parse", "read input", "Pass either --line or arguments, not both", nil)
				}
				raw = lineFlag
			}
			opCtx := ctx.operationContext(cmd.Context(), string(id), "parse", "")
			logger := ctx.componentLogger(opCtx, "parse")

			set, err := engine.Parse(id, raw)
			if err != nil {
				logger.Debug("command line rejected", logging.String("raw", raw), logging.Error(err))
				if errors.Is(err, params.ErrParse) {
					return services.Wrap(services.ErrValidation, "parse", "tokenize", fmt.Sprintf("%s rejected the command line", id.Name()), err)
				}
				return err
			}
			canonical, err := engine.Generate(id, set)
			if err != nil {
				return err
			}

			view := describeSet(id, set, canonical, cfg)
			if handled, err := ctx.writeStructured(cmd, view); handled {
				return err
			}
			renderInvocation(cmd, view, set)
			return nil
		},
	}
	cmd.Flags().StringVarP(&engineFlag, "engine", "e", "", "Dumping engine (defaults to dump.engine)")
	cmd.Flags().StringVar(&lineFlag, "line", "", "Command line as a single string")
	return cmd
}

func renderInvocation(cmd *cobra.Command, view invocationView, set *params.Set) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Engine:    %s\n", view.Engine)
	fmt.Fprintf(out, "Command:   %s\n", view.Command)
	fmt.Fprintf(out, "Dumping:   %s\n", yesNo(view.Dumping))
	if view.Input != "" {
		fmt.Fprintf(out, "Input:     %s\n", view.Input)
	}
	if view.Output != "" {
		fmt.Fprintf(out, "Output:    %s\n", view.Output)
	}
	if view.Speed != nil {
		fmt.Fprintf(out, "Speed:     %d\n", *view.Speed)
	}
	if view.Arguments != "" {
		fmt.Fprintf(out, "Canonical: %s\n", view.Arguments)
	}
	if len(view.Flags) == 0 {
		return
	}
	rows := make([][]string, 0, len(view.Flags))
	for _, name := range view.Flags {
		rows = append(rows, []string{name, flagValue(set, name)})
	}
	fmt.Fprintln(out, renderTable([]string{"Flag", "Value"}, rows, []columnAlignment{alignLeft, alignLeft}))
}

func flagValue(set *params.Set, name string) string {
	flag, ok := set.Grammar().Lookup(name)
	if !ok {
		return ""
	}
	value, ok := set.Value(name)
	if !ok {
		return ""
	}
	tokens := flag.Format(value)
	if len(tokens) > 0 && tokens[0] == flag.Name {
		tokens = tokens[1:]
	}
	if len(tokens) == 1 && strings.HasPrefix(tokens[0], flag.Name+"=") {
		return strings.TrimPrefix(tokens[0], flag.Name+"=")
	}
	return strings.Join(tokens, " ")
}
