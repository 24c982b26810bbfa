// Package umd describes UmdImageCreator, the PSP-hosted UMD dumper. It
// takes no command line.
package umd

import (
	"dumpdriver/internal/params"
	"dumpdriver/internal/target"
)

var grammar = &params.Grammar{ImplicitAllowed: true}

// Grammar returns the empty UmdImageCreator grammar.
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

// IsDumpingCommand reports whether set is a UMD dump.
func IsDumpingCommand(set *params.Set) bool {
	return set != nil
}

// Supports reports whether UmdImageCreator can dump the target.
func Supports(system target.System, media target.MediaType) bool {
	return system == target.SystemSonyPSP && media == target.MediaUMD
}

// DefaultParameters returns the implicit set for PSP UMDs and nil otherwise.
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
