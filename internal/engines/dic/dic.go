package dic

import (
	"dumpdriver/internal/params"
)

// Generate renders set as a DiscImageCreator command line.
func Generate(set *params.Set) (string, error) {
	return params.Generate(set)
}

// Parse reads a DiscImageCreator command line.
func Parse(raw string) (*params.Set, error) {
	return params.Parse(grammar, raw)
}

// CommandSupport returns the legal flags of every command.
func CommandSupport() map[params.Command][]string {
	return grammar.Support()
}

// IsDumpingCommand reports whether set reads media. Drive control, listing,
// and post-processing commands do not.
func IsDumpingCommand(set *params.Set) bool {
	if set == nil {
		return false
	}
	switch set.Command() {
	case CommandClose, CommandDriveSpeed, CommandEject, CommandList, CommandReset,
		CommandStart, CommandStop, CommandVersion, CommandMDS, CommandSub, CommandMerge:
		return false
	default:
		return true
	}
}

// InputPath returns the drive the command reads from.
func InputPath(set *params.Set) string {
	if set == nil {
		return ""
	}
	drive, _ := set.Text(PosDrive)
	return drive
}

// OutputPath returns the image path the command writes.
func OutputPath(set *params.Set) string {
	if set == nil {
		return ""
	}
	path, _ := set.Text(PosFilename)
	return path
}

// Speed returns the requested read speed when one is set.
func Speed(set *params.Set) (int, bool) {
	if set == nil {
		return 0, false
	}
	speed, ok := set.Int(PosSpeed)
	return int(speed), ok
}
