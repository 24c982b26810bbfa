package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"dumpdriver/internal/config"
	"dumpdriver/internal/engine"
	"dumpdriver/internal/services"
	"dumpdriver/internal/target"
	"dumpdriver/internal/textutil"
)

// targetFlags are the flags shared by commands that act on one dump.
type targetFlags struct {
	engine string
	system string
	media  string
}

func (f *targetFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.engine, "engine", "e", "", "Dumping engine (defaults to dump.engine)")
	cmd.Flags().StringVarP(&f.system, "system", "s", "", "Target system identifier or name")
	cmd.Flags().StringVarP(&f.media, "media", "m", "", "Media type identifier or name")
}

// resolve returns the engine plus the optional system and media type.
func (f *targetFlags) resolve(cfg *config.Config) (engine.ID, target.System, target.MediaType, error) {
	id, err := resolveEngine(f.engine, cfg)
	if err != nil {
		return "", "", "", err
	}
	var system target.System
	if strings.TrimSpace(f.system) != "" {
		system, err = target.ParseSystem(f.system)
		if err != nil {
			return "", "", "", services.Wrap(services.ErrValidation, "cli", "parse system", "Invalid --system", err)
		}
	}
	var media target.MediaType
	if strings.TrimSpace(f.media) != "" {
		media, err = target.ParseMediaType(f.media)
		if err != nil {
			return "", "", "", services.Wrap(services.ErrValidation, "cli", "parse media", "Invalid --media", err)
		}
	}
	return id, system, media, nil
}

func resolveEngine(value string, cfg *config.Config) (engine.ID, error) {
	if strings.TrimSpace(value) == "" && cfg != nil {
		value = cfg.Dump.Engine
	}
	return engine.ParseID(value)
}

// intentFlags describe a dumping intent for the generate command.
type intentFlags struct {
	targetFlags
	drive   string
	speed   int
	output  string
	name    string
	options []string
}

func (f *intentFlags) register(cmd *cobra.Command) {
	f.targetFlags.register(cmd)
	cmd.Flags().StringVarP(&f.drive, "drive", "d", "", "Drive path or letter (defaults to dump.drive)")
	cmd.Flags().IntVar(&f.speed, "speed", -1, "Read speed; 0 lets the engine choose (defaults to dump.speed)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Output image path")
	cmd.Flags().StringVarP(&f.name, "name", "n", "", "Dump name used to build the output path under paths.output_dir")
	cmd.Flags().StringArrayVar(&f.options, "option", nil, "Engine option override as key=value (repeatable)")
}

// spec assembles the target.Spec, layering flags over configuration.
func (f *intentFlags) spec(cfg *config.Config) (engine.ID, target.Spec, error) {
	id, system, media, err := f.resolve(cfg)
	if err != nil {
		return "", target.Spec{}, err
	}
	if system == "" || media == "" {
		return "", target.Spec{}, services.Wrap(services.ErrValidation, "cli", "build intent", "--system and --media are required", nil)
	}

	spec := target.Spec{
		System:  system,
		Media:   media,
		Drive:   strings.TrimSpace(f.drive),
		Speed:   f.speed,
		Options: target.Options(cfg.OptionBag()),
	}
	if spec.Drive == "" {
		spec.Drive = cfg.Dump.Drive
	}
	if spec.Speed < 0 {
		spec.Speed = cfg.Dump.Speed
	}
	for _, raw := range f.options {
		key, value, ok := strings.Cut(raw, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return "", target.Spec{}, services.Wrap(services.ErrValidation, "cli", "build intent", fmt.Sprintf("Invalid --option %q; want key=value", raw), nil)
		}
		spec.Options[key] = strings.TrimSpace(value)
	}

	spec.OutputPath, err = outputPath(f.output, f.name, cfg, media)
	if err != nil {
		return "", target.Spec{}, err
	}
	return id, spec, nil
}

// outputPath returns --output when set, otherwise
// <output_dir>/<name>/<name><ext> with a media-appropriate extension.
func outputPath(output, name string, cfg *config.Config, media target.MediaType) (string, error) {
	if strings.TrimSpace(output) != "" {
		return strings.TrimSpace(output), nil
	}
	clean := textutil.SanitizeFileName(name)
	if clean == "" {
		return "", services.Wrap(services.ErrValidation, "cli", "build intent", "--output or --name is required", nil)
	}
	return filepath.Join(cfg.Paths.OutputDir, clean, clean+imageExtension(media)), nil
}

func imageExtension(media target.MediaType) string {
	switch media {
	case target.MediaCDROM, target.MediaGDROM, target.MediaVideoCD, target.MediaSuperAudioCD:
		return ".bin"
	default:
		return ".iso"
	}
}

// basePath strips the image extension from a path argument so either the
// image or the bare base can be passed.
func basePath(arg string) (string, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return "", services.Wrap(services.ErrValidation, "cli", "resolve base", "Dump base path is required", nil)
	}
	expanded, err := config.ExpandPath(arg)
	if err != nil {
		return "", err
	}
	switch strings.ToLower(filepath.Ext(expanded)) {
	case ".bin", ".iso", ".cue", ".img":
		expanded = strings.TrimSuffix(expanded, filepath.Ext(expanded))
	}
	return expanded, nil
}
