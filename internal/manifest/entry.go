package manifest

import (
	"path/filepath"

	"dumpdriver/internal/target"
)

// Attr is a bit set of per-file attributes.
type Attr uint8

const (
	// Required files must exist for a run to count as complete.
	Required Attr = 1 << iota
	// Artifact files are embedded in the submission record.
	Artifact
	// Binary artifacts are embedded as raw bytes rather than decoded text.
	Binary
	// Deletable files may be removed once a dump is verified.
	Deletable
	// Archivable files are moved into the log bundle.
	Archivable
)

// Has reports whether every bit of flag is set.
func (a Attr) Has(flag Attr) bool {
	return a&flag == flag
}

// Entry is one expected output file.
type Entry struct {
	// Names lists alternative spellings. Each is appended to the base path,
	// or joined to the base path's directory when InDir is set.
	Names []string
	InDir bool
	// Key names the artifact in the submission record.
	Key   string
	Attrs Attr
	// Media and Systems restrict the entry. Empty means unrestricted.
	Media   []target.MediaType
	Systems []target.System
}

// Applies reports whether the entry is expected for the given target.
func (e Entry) Applies(system target.System, media target.MediaType) bool {
	if len(e.Media) > 0 && !containsMedia(e.Media, media) {
		return false
	}
	if len(e.Systems) > 0 && !containsSystem(e.Systems, system) {
		return false
	}
	return true
}

// Paths returns the candidate paths of the entry for base, in preference
// order.
func (e Entry) Paths(base string) []string {
	out := make([]string, 0, len(e.Names))
	for _, name := range e.Names {
		if e.InDir {
			out = append(out, filepath.Join(filepath.Dir(base), name))
			continue
		}
		out = append(out, base+name)
	}
	return out
}

// Select returns the entries that apply to the target.
func Select(entries []Entry, system target.System, media target.MediaType) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Applies(system, media) {
			out = append(out, e)
		}
	}
	return out
}

func containsMedia(list []target.MediaType, m target.MediaType) bool {
	for _, v := range list {
		if v == m {
			return true
		}
	}
	return false
}

func containsSystem(list []target.System, s target.System) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
