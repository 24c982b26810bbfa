// Package xbc describes Xbox Backup Creator, the Windows GUI tool used to
// dump Xbox and Xbox 360 discs on a flashed drive. It is operated by hand,
// so the only parameter set is the empty implicit one.
package xbc

import (
	"dumpdriver/internal/params"
	"dumpdriver/internal/target"
)

var grammar = &params.Grammar{ImplicitAllowed: true}

// Grammar returns the empty XBC grammar.
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

// IsDumpingCommand reports whether set is an XBC dump.
func IsDumpingCommand(set *params.Set) bool {
	return set != nil
}

// Supports reports whether the target is an Xbox or Xbox 360 DVD.
func Supports(system target.System, media target.MediaType) bool {
	switch system {
	case target.SystemMicrosoftXbox, target.SystemMicrosoftXbox360:
		return media == target.MediaDVD
	default:
		return false
	}
}

// DefaultParameters returns the implicit set for Xbox DVDs and nil
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
