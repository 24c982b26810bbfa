// Package ps3cfw describes dumps made on a PlayStation 3 running custom
// firmware, where the disc is copied by the console and the disc key is
// pulled with a getkey tool. There is no command line to drive.
package ps3cfw

import (
	"dumpdriver/internal/params"
	"dumpdriver/internal/target"
)

var grammar = &params.Grammar{ImplicitAllowed: true}

// Grammar returns the empty PS3 CFW grammar.
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

// IsDumpingCommand reports whether set is a PS3 dump.
func IsDumpingCommand(set *params.Set) bool {
	return set != nil
}

// Supports reports whether the target is a PlayStation 3 Blu-ray.
func Supports(system target.System, media target.MediaType) bool {
	return system == target.SystemSonyPlayStation3 && media == target.MediaBluRay
}

// DefaultParameters returns the implicit set for PS3 discs and nil
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
