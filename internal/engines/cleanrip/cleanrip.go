// Package cleanrip describes CleanRip, the homebrew GameCube and Wii disc
// dumper. CleanRip runs on the console itself, so it has no command line;
// only the implicit parameter set exists.
package cleanrip

import (
	"dumpdriver/internal/params"
	"dumpdriver/internal/target"
)

var grammar = &params.Grammar{ImplicitAllowed: true}

// Grammar returns the empty CleanRip grammar.
func Grammar() *params.Grammar {
	return grammar
}

// Generate always yields the empty command line.
func Generate(set *params.Set) (string, error) {
	return params.Generate(set)
}

// Parse accepts only the empty command line.
func Parse(raw string) (*params.Set, error) {
	return params.Parse(grammar, raw)
}

// CommandSupport returns the single implicit mode with no flags.
func CommandSupport() map[params.Command][]string {
	return grammar.Support()
}

// IsDumpingCommand reports whether set is a CleanRip dump.
func IsDumpingCommand(set *params.Set) bool {
	return set != nil
}

// Supports reports whether CleanRip can dump the target.
func Supports(system target.System, media target.MediaType) bool {
	switch {
	case system == target.SystemNintendoGameCube && media == target.MediaGameCube:
		return true
	case system == target.SystemNintendoWii && media == target.MediaWii:
		return true
	default:
		return false
	}
}

// DefaultParameters returns the implicit set for supported targets and nil
// otherwise.
func DefaultParameters(spec target.Spec) *params.Set {
	if !Supports(spec.System, spec.Media) {
		return nil
	}
	set, err := params.NewSet(grammar, params.Implicit)
	if err != nil {
		return nil
	}
	return set
}
