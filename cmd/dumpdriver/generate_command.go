package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"dumpdriver/internal/config"
	"dumpdriver/internal/engine"
	"dumpdriver/internal/logging"
	"dumpdriver/internal/params"
	"dumpdriver/internal/services"
)

// invocationView describes a command line and what it will do.
type invocationView struct {
	Engine      string   `json:"engine" yaml:"engine"`
	Executable  string   `json:"executable,omitempty" yaml:"executable,omitempty"`
	Command     string   `json:"command" yaml:"command"`
	Arguments   string   `json:"arguments" yaml:"arguments"`
	CommandLine string   `json:"command_line,omitempty" yaml:"command_line,omitempty"`
	Flags       []string `json:"flags,omitempty" yaml:"flags,omitempty"`
	Input       string   `json:"input,omitempty" yaml:"input,omitempty"`
	Output      string   `json:"output,omitempty" yaml:"output,omitempty"`
	Speed       *int     `json:"speed,omitempty" yaml:"speed,omitempty"`
	Dumping     bool     `json:"dumping" yaml:"dumping"`
}

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	var flags intentFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Build the engine command line for a dumping intent",
		Example: `  dumpdriver generate -e redumper -s sony_playstation -m cdrom -d /dev/sr0 -n "Game Title"
  dumpdriver generate -e dic -s microsoft_xbox -m dvd -d E: --speed 8 -o D:\dumps\game.iso`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			id, spec, err := flags.spec(cfg)
			if err != nil {
				return err
			}
			opCtx := ctx.operationContext(cmd.Context(), string(id), "generate", spec.OutputPath)
			logger := ctx.componentLogger(opCtx, "generate")

			set := engine.DefaultParameters(id, spec)
			if set == nil {
				return services.Wrap(services.ErrUnsupported, "generate", "default parameters",
					fmt.Sprintf("%s cannot dump %s on %s", id.Name(), spec.Media.Name(), spec.System.Name()), nil)
			}
			line, err := engine.Generate(id, set)
			if err != nil {
				if errors.Is(err, params.ErrUnbuildable) {
					logging.WarnWithContext(logger, "command line incomplete", "generate_unbuildable",
						logging.Error(err),
						logging.String(logging.FieldErrorHint, "pass --drive and --speed or set them in [dump]"),
						logging.String(logging.FieldImpact, "no command line produced"),
					)
					return services.Wrap(services.ErrValidation, "generate", "render", "Command line is missing a mandatory value (drive or speed)", err)
				}
				return err
			}

			view := describeSet(id, set, line, cfg)
			logger.Info("command line generated",
				logging.String("command", view.Command),
				logging.Bool("dumping", view.Dumping),
			)
			if handled, err := ctx.writeStructured(cmd, view); handled {
				return err
			}
			if view.CommandLine == "" {
				fmt.Fprintf(cmd.OutOrStdout(), "%s has no command line; run it on the console and verify the outputs at %s\n", id.Name(), spec.OutputPath)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), view.CommandLine)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

// describeSet fills an invocationView from a parameter set and its rendered
// arguments.
func describeSet(id engine.ID, set *params.Set, line string, cfg *config.Config) invocationView {
	view := invocationView{
		Engine:     string(id),
		Executable: executableFor(id, cfg),
		Command:    displayCommand(set.Command()),
		Arguments:  line,
		Flags:      set.Active(),
		Input:      engine.InputPath(id, set),
		Output:     engine.OutputPath(id, set),
		Dumping:    engine.IsDumpingCommand(id, set),
	}
	if speed, ok := engine.Speed(id, set); ok {
		view.Speed = &speed
	}
	if view.Executable != "" {
		view.CommandLine = strings.TrimSpace(quoteExecutable(view.Executable) + " " + line)
	}
	return view
}

func executableFor(id engine.ID, cfg *config.Config) string {
	if cfg != nil {
		switch id {
		case engine.DiscImageCreator:
			return cfg.DIC.Binary
		case engine.Redumper:
			return cfg.Redumper.Binary
		}
	}
	return id.Executable()
}

func quoteExecutable(path string) string {
	if strings.ContainsAny(path, " \t") {
		return `"` + path + `"`
	}
	return path
}
