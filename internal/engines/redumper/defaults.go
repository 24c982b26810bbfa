package redumper

import (
	"strings"

	"dumpdriver/internal/params"
	"dumpdriver/internal/target"
)

// Option bag keys.
const (
	OptionRereadCount      = "redumper.reread_count"
	OptionVerbose          = "redumper.verbose"
	OptionDebug            = "redumper.debug"
	OptionDriveType        = "redumper.drive_type"
	OptionReadMethod       = "redumper.read_method"
	OptionSectorOrder      = "redumper.sector_order"
	OptionRefineSubchannel = "redumper.refine_subchannel"
	OptionLeadinRetries    = "redumper.leadin_retries"
)

// DefaultRereadCount is used when the option bag does not set a retry count.
const DefaultRereadCount = 20

// CommandFor returns the mode for a target, or false when redumper cannot
// dump it.
func CommandFor(system target.System, media target.MediaType) (params.Command, bool) {
	switch system {
	case target.SystemNintendoGameCube, target.SystemNintendoWii, target.SystemNintendoWiiU, target.SystemSonyPSP:
		return "", false
	}
	switch media {
	case target.MediaCDROM, target.MediaVideoCD, target.MediaDVD, target.MediaDVDAudio, target.MediaBluRay, target.MediaHDDVD:
		return ModeDisc, true
	default:
		return "", false
	}
}

// DefaultParameters synthesizes the parameter set for spec, or nil when the
// target is unsupported.
func DefaultParameters(spec target.Spec) *params.Set {
	mode, ok := CommandFor(spec.System, spec.Media)
	if !ok {
		return nil
	}
	set, err := params.NewSet(grammar, mode)
	if err != nil {
		return nil
	}
	opts := spec.Option()
	b := &builder{set: set}
	isCD := spec.Media == target.MediaCDROM || spec.Media == target.MediaVideoCD

	if opts.Bool(OptionVerbose) {
		b.enable(FlagVerbose, params.Value{})
	}
	if opts.Bool(OptionDebug) {
		b.enable(FlagDebug, params.Value{})
	}
	if spec.Drive != "" {
		b.enable(FlagDrive, params.StringValue(spec.Drive))
	}
	if spec.HasSpeed() {
		b.enable(FlagSpeed, params.IntValue(int64(spec.Speed)))
	}
	b.enable(FlagRetries, params.IntValue(int64(opts.Int(OptionRereadCount, DefaultRereadCount))))
	if dir, name := splitOutput(spec.OutputPath); name != "" {
		if dir != "" {
			b.enable(FlagImagePath, params.StringValue(dir))
		}
		b.enable(FlagImageName, params.StringValue(name))
	}

	driveType := strings.ToUpper(opts.String(OptionDriveType))
	b.choice(FlagDriveType, driveType)
	b.choice(FlagDriveReadMethod, strings.ToUpper(opts.String(OptionReadMethod)))
	b.choice(FlagDriveSectorOrder, strings.ToUpper(opts.String(OptionSectorOrder)))

	if isCD && opts.Bool(OptionRefineSubchannel) {
		b.enable(FlagRefineSubchannel, params.Value{})
	}
	if isCD && driveType == "PLEXTOR" {
		if retries := opts.Int(OptionLeadinRetries, 0); retries > 0 {
			b.enable(FlagPlextorLeadinRetries, params.IntValue(int64(retries)))
		}
	}

	if b.err != nil {
		return nil
	}
	return set
}

// splitOutput breaks an output path into the directory and the file name
// without extension. Both separators are honored because redumper runs on
// Windows as well.
func splitOutput(path string) (string, string) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", ""
	}
	dir, name := "", path
	if idx := strings.LastIndexAny(path, `/\`); idx >= 0 {
		dir, name = path[:idx], path[idx+1:]
	}
	if dot := strings.LastIndex(name, "."); dot > 0 {
		name = name[:dot]
	}
	return dir, name
}

func separatorFor(dir string) string {
	if strings.Contains(dir, `\`) && !strings.Contains(dir, "/") {
		return `\`
	}
	return "/"
}

type builder struct {
	set *params.Set
	err error
}

func (b *builder) enable(name string, value params.Value) {
	if b.err != nil {
		return
	}
	b.err = b.set.Enable(name, value)
}

// choice enables a choice-restricted flag when value is one of its choices
// and ignores it otherwise.
func (b *builder) choice(name, value string) {
	if value == "" {
		return
	}
	if flag, ok := grammar.Lookup(name); ok && flag.Accepts(value) {
		b.enable(name, params.StringValue(value))
	}
}
