// Package engine dispatches the shared dumping operations to the engine
// packages. The engine set is closed; each operation switches on ID.
package engine

import (
	"fmt"
	"strings"

	"dumpdriver/internal/engines/cleanrip"
	"dumpdriver/internal/engines/dic"
	"dumpdriver/internal/engines/ps3cfw"
	"dumpdriver/internal/engines/redumper"
	"dumpdriver/internal/engines/umd"
	"dumpdriver/internal/engines/xbc"
	"dumpdriver/internal/manifest"
	"dumpdriver/internal/params"
	"dumpdriver/internal/services"
	"dumpdriver/internal/target"
)

// ID names a dumping engine.
type ID string

const (
	DiscImageCreator  ID = "dic"
	Redumper          ID = "redumper"
	CleanRip          ID = "cleanrip"
	UmdImageCreator   ID = "umd"
	PS3CFW            ID = "ps3cfw"
	XboxBackupCreator ID = "xbc"
)

var all = []ID{DiscImageCreator, Redumper, CleanRip, UmdImageCreator, PS3CFW, XboxBackupCreator}

// All returns every engine in display order.
func All() []ID {
	return append([]ID(nil), all...)
}

// Known reports whether id is one of the supported engines.
func (id ID) Known() bool {
	for _, candidate := range all {
		if candidate == id {
			return true
		}
	}
	return false
}

// Name returns the display name of the engine.
func (id ID) Name() string {
	switch id {
	case DiscImageCreator:
		return "DiscImageCreator"
	case Redumper:
		return "Redumper"
	case CleanRip:
		return "CleanRip"
	case UmdImageCreator:
		return "UmdImageCreator"
	case PS3CFW:
		return "PlayStation 3 CFW"
	case XboxBackupCreator:
		return "Xbox Backup Creator"
	default:
		return string(id)
	}
}

// Executable returns the binary name the engine is launched with, or ""
// for engines that run on the console or are operated by hand.
func (id ID) Executable() string {
	switch id {
	case DiscImageCreator:
		return "DiscImageCreator"
	case Redumper:
		return "redumper"
	default:
		return ""
	}
}

// ParseID resolves an engine identifier or display name, ignoring case.
func ParseID(value string) (ID, error) {
	needle := strings.ToLower(strings.TrimSpace(value))
	if needle == "" {
		return "", services.Wrap(services.ErrValidation, "engine", "parse id", "Engine required", nil)
	}
	for _, id := range all {
		if string(id) == needle || strings.ToLower(id.Name()) == needle {
			return id, nil
		}
	}
	return "", services.Wrap(services.ErrValidation, "engine", "parse id", fmt.Sprintf("Unknown engine %q", value), nil)
}

func unknown(id ID, op string) error {
	return services.Wrap(services.ErrUnsupported, "engine", op, fmt.Sprintf("Unknown engine %q", id), nil)
}

// Grammar returns the command-line grammar of the engine.
func Grammar(id ID) (*params.Grammar, error) {
	switch id {
	case DiscImageCreator:
		return dic.Grammar(), nil
	case Redumper:
		return redumper.Grammar(), nil
	case CleanRip:
		return cleanrip.Grammar(), nil
	case UmdImageCreator:
		return umd.Grammar(), nil
	case PS3CFW:
		return ps3cfw.Grammar(), nil
	case XboxBackupCreator:
		return xbc.Grammar(), nil
	default:
		return nil, unknown(id, "grammar")
	}
}

// Generate renders set as a command line for the engine.
func Generate(id ID, set *params.Set) (string, error) {
	switch id {
	case DiscImageCreator:
		return dic.Generate(set)
	case Redumper:
		return redumper.Generate(set)
	case CleanRip:
		return cleanrip.Generate(set)
	case UmdImageCreator:
		return umd.Generate(set)
	case PS3CFW:
		return ps3cfw.Generate(set)
	case XboxBackupCreator:
		return xbc.Generate(set)
	default:
		return "", unknown(id, "generate")
	}
}

// Parse reads a raw command line for the engine.
func Parse(id ID, raw string) (*params.Set, error) {
	switch id {
	case DiscImageCreator:
		return dic.Parse(raw)
	case Redumper:
		return redumper.Parse(raw)
	case CleanRip:
		return cleanrip.Parse(raw)
	case UmdImageCreator:
		return umd.Parse(raw)
	case PS3CFW:
		return ps3cfw.Parse(raw)
	case XboxBackupCreator:
		return xbc.Parse(raw)
	default:
		return nil, unknown(id, "parse")
	}
}

// DefaultParameters synthesizes the parameter set for spec, or nil when the
// engine cannot dump the target.
func DefaultParameters(id ID, spec target.Spec) *params.Set {
	switch id {
	case DiscImageCreator:
		return dic.DefaultParameters(spec)
	case Redumper:
		return redumper.DefaultParameters(spec)
	case CleanRip:
		return cleanrip.DefaultParameters(spec)
	case UmdImageCreator:
		return umd.DefaultParameters(spec)
	case PS3CFW:
		return ps3cfw.DefaultParameters(spec)
	case XboxBackupCreator:
		return xbc.DefaultParameters(spec)
	default:
		return nil
	}
}

// CommandSupport returns the legal flags of each command of the engine.
func CommandSupport(id ID) map[params.Command][]string {
	switch id {
	case DiscImageCreator:
		return dic.CommandSupport()
	case Redumper:
		return redumper.CommandSupport()
	case CleanRip:
		return cleanrip.CommandSupport()
	case UmdImageCreator:
		return umd.CommandSupport()
	case PS3CFW:
		return ps3cfw.CommandSupport()
	case XboxBackupCreator:
		return xbc.CommandSupport()
	default:
		return nil
	}
}

// IsDumpingCommand reports whether set reads media.
func IsDumpingCommand(id ID, set *params.Set) bool {
	switch id {
	case DiscImageCreator:
		return dic.IsDumpingCommand(set)
	case Redumper:
		return redumper.IsDumpingCommand(set)
	case CleanRip:
		return cleanrip.IsDumpingCommand(set)
	case UmdImageCreator:
		return umd.IsDumpingCommand(set)
	case PS3CFW:
		return ps3cfw.IsDumpingCommand(set)
	case XboxBackupCreator:
		return xbc.IsDumpingCommand(set)
	default:
		return false
	}
}

// InputPath returns the drive a command reads from. Engines without a
// command line have none.
func InputPath(id ID, set *params.Set) string {
	switch id {
	case DiscImageCreator:
		return dic.InputPath(set)
	case Redumper:
		return redumper.InputPath(set)
	case CleanRip, UmdImageCreator, PS3CFW, XboxBackupCreator:
		return ""
	default:
		return ""
	}
}

// OutputPath returns the output path a command writes to.
func OutputPath(id ID, set *params.Set) string {
	switch id {
	case DiscImageCreator:
		return dic.OutputPath(set)
	case Redumper:
		return redumper.OutputPath(set)
	case CleanRip, UmdImageCreator, PS3CFW, XboxBackupCreator:
		return ""
	default:
		return ""
	}
}

// Speed returns the read speed a command requests.
func Speed(id ID, set *params.Set) (int, bool) {
	switch id {
	case DiscImageCreator:
		return dic.Speed(set)
	case Redumper:
		return redumper.Speed(set)
	case CleanRip, UmdImageCreator, PS3CFW, XboxBackupCreator:
		return 0, false
	default:
		return 0, false
	}
}

// Outputs returns the manifest of files the engine produces.
func Outputs(id ID) []manifest.Entry {
	switch id {
	case DiscImageCreator:
		return dic.Outputs()
	case Redumper:
		return redumper.Outputs()
	case CleanRip:
		return cleanrip.Outputs()
	case UmdImageCreator:
		return umd.Outputs()
	case PS3CFW:
		return ps3cfw.Outputs()
	case XboxBackupCreator:
		return xbc.Outputs()
	default:
		return nil
	}
}

// Supports reports whether the engine can dump the target.
func Supports(id ID, system target.System, media target.MediaType) bool {
	switch id {
	case DiscImageCreator:
		_, ok := dic.CommandFor(system, media)
		return ok
	case Redumper:
		_, ok := redumper.CommandFor(system, media)
		return ok
	case CleanRip:
		return cleanrip.Supports(system, media)
	case UmdImageCreator:
		return umd.Supports(system, media)
	case PS3CFW:
		return ps3cfw.Supports(system, media)
	case XboxBackupCreator:
		return xbc.Supports(system, media)
	default:
		return false
	}
}
