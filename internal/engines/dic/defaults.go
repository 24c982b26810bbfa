package dic

import (
	"dumpdriver/internal/params"
	"dumpdriver/internal/target"
)

// Option bag keys.
const (
	OptionRereadCount      = "dic.reread_count"
	OptionDVDRereadCount   = "dic.dvd_reread_count"
	OptionQuiet            = "dic.quiet"
	OptionParanoid         = "dic.paranoid"
	OptionMultiSectorRead  = "dic.multi_sector_read"
	OptionMultiSectorValue = "dic.multi_sector_read_value"
)

// Reread counts used when the option bag does not set one.
const (
	DefaultRereadCount    = 20
	DefaultDVDRereadCount = 10
)

// CommandFor returns the base command for a target, or false when the
// combination cannot be dumped with DiscImageCreator.
func CommandFor(system target.System, media target.MediaType) (params.Command, bool) {
	switch system {
	case target.SystemNintendoGameCube, target.SystemNintendoWii, target.SystemNintendoWiiU:
		return "", false
	case target.SystemSonyPSP:
		if media == target.MediaUMD {
			return "", false
		}
	case target.SystemMicrosoftXbox, target.SystemMicrosoftXbox360:
		if media == target.MediaDVD {
			return CommandXbox, true
		}
	}

	switch media {
	case target.MediaCDROM, target.MediaVideoCD:
		return CommandCompactDisc, true
	case target.MediaGDROM:
		return CommandGDROM, true
	case target.MediaDVD, target.MediaHDDVD, target.MediaDVDAudio:
		return CommandDVD, true
	case target.MediaBluRay:
		return CommandBluRay, true
	case target.MediaSuperAudioCD:
		return CommandSACD, true
	case target.MediaFloppy:
		return CommandFloppy, true
	case target.MediaHardDisk, target.MediaFlash, target.MediaCompactFlash, target.MediaSDCard:
		return CommandDisk, true
	default:
		return "", false
	}
}

// ImageExtension returns the image extension DiscImageCreator uses for
// command.
func ImageExtension(cmd params.Command) string {
	switch cmd {
	case CommandCompactDisc, CommandGDROM, CommandSwap, CommandAudio, CommandData:
		return ".bin"
	case CommandFloppy, CommandDisk:
		return ".img"
	default:
		return ".iso"
	}
}

func isCDFamily(cmd params.Command) bool {
	switch cmd {
	case CommandCompactDisc, CommandSwap, CommandAudio, CommandData, CommandGDROM:
		return true
	default:
		return false
	}
}

// DefaultParameters synthesizes the parameter set for spec, or nil when the
// target is unsupported.
func DefaultParameters(spec target.Spec) *params.Set {
	cmd, ok := CommandFor(spec.System, spec.Media)
	if !ok {
		return nil
	}
	set, err := params.NewSet(grammar, cmd)
	if err != nil {
		return nil
	}
	opts := spec.Option()
	b := &builder{set: set}

	if spec.Drive != "" {
		b.enable(PosDrive, params.StringValue(spec.Drive))
	}
	if spec.OutputPath != "" {
		b.enable(PosFilename, params.StringValue(spec.OutputPath))
	}
	if spec.HasSpeed() && grammar.Legal(cmd, PosSpeed) {
		b.enable(PosSpeed, params.IntValue(int64(spec.Speed)))
	}

	if isCDFamily(cmd) {
		b.enable(FlagC2Opcode, params.IntValue(int64(opts.Int(OptionRereadCount, DefaultRereadCount))))
	}
	if cmd == CommandDVD || cmd == CommandBluRay || cmd == CommandXbox {
		b.enable(FlagRetryCount, params.IntValue(int64(opts.Int(OptionDVDRereadCount, DefaultDVDRereadCount))))
	}
	if cmd == CommandCompactDisc && spec.System == target.SystemAtariJaguarCD {
		b.enable(FlagAtariJaguar, params.Value{})
	}
	if cmd == CommandCompactDisc && spec.System == target.SystemSonyPlayStation {
		b.enable(FlagNoFixSubQLibCrypt, params.Value{})
		b.enable(FlagScanAntiMod, params.Value{})
	}
	if opts.Bool(OptionMultiSectorRead) && grammar.Legal(cmd, FlagMultiSectorRead) {
		value := params.Value{}
		if n := opts.Int(OptionMultiSectorValue, 0); n > 0 {
			value = params.IntValue(int64(n))
		}
		b.enable(FlagMultiSectorRead, value)
	}
	if opts.Bool(OptionParanoid) {
		switch {
		case cmd == CommandDVD:
			b.enable(FlagCopyrightManagement, params.Value{})
		case isCDFamily(cmd):
			b.enable(FlagNoFixSubQSecuROM, params.Value{})
			if grammar.Legal(cmd, FlagScanFileProtect) {
				b.enable(FlagScanFileProtect, params.Value{})
				b.enable(FlagScanSectorProtect, params.Value{})
			}
		}
	}
	if opts.Bool(OptionQuiet) {
		b.enable(FlagDisableBeep, params.Value{})
	}

	if b.err != nil {
		return nil
	}
	return set
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
