package redumper

import "dumpdriver/internal/params"

// Generate renders set as a redumper command line.
func Generate(set *params.Set) (string, error) {
	return params.Generate(set)
}

// Parse reads a redumper command line. A line without a mode token selects
// the implicit mode.
func Parse(raw string) (*params.Set, error) {
	return params.Parse(grammar, raw)
}

// CommandSupport returns the legal flags of every mode.
func CommandSupport() map[params.Command][]string {
	return grammar.Support()
}

// IsDumpingCommand reports whether set reads media.
func IsDumpingCommand(set *params.Set) bool {
	return set != nil && set.Command() != ModeEject
}

// InputPath returns the drive the command reads from.
func InputPath(set *params.Set) string {
	if set == nil {
		return ""
	}
	drive, _ := set.Text(FlagDrive)
	return drive
}

// OutputPath joins --image-path and --image-name back into the base path
// of the dump.
func OutputPath(set *params.Set) string {
	if set == nil {
		return ""
	}
	dir, _ := set.Text(FlagImagePath)
	name, _ := set.Text(FlagImageName)
	switch {
	case dir == "":
		return name
	case name == "":
		return dir
	default:
		return dir + separatorFor(dir) + name
	}
}

// Speed returns the requested read speed when one is set.
func Speed(set *params.Set) (int, bool) {
	if set == nil {
		return 0, false
	}
	speed, ok := set.Int(FlagSpeed)
	return int(speed), ok
}
