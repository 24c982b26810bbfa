package manifest

import (
	"dumpdriver/internal/fileutil"
	"dumpdriver/internal/target"
)

// Result is the outcome of a completeness check.
type Result struct {
	AllPresent bool
	// Missing lists the preferred path of every absent required entry.
	Missing []string
}

// CheckAllPresent reports whether every required entry that applies to the
// target exists next to base. With precheck set, an entry may also be
// satisfied by a file of the same name inside the log bundle. Missing files
// are reported, never returned as errors.
func CheckAllPresent(entries []Entry, base string, system target.System, media target.MediaType, precheck bool) Result {
	var bundle *Bundle
	if precheck && fileutil.Exists(BundlePath(base)) {
		if opened, err := OpenBundle(BundlePath(base)); err == nil {
			bundle = opened
			defer bundle.Close()
		}
	}

	result := Result{AllPresent: true}
	for _, entry := range Select(entries, system, media) {
		if !entry.Attrs.Has(Required) {
			continue
		}
		paths := entry.Paths(base)
		if len(paths) == 0 {
			continue
		}
		if satisfied(paths, bundle) {
			continue
		}
		result.AllPresent = false
		result.Missing = append(result.Missing, paths[0])
	}
	return result
}

func satisfied(paths []string, bundle *Bundle) bool {
	for _, path := range paths {
		if fileutil.Exists(path) || bundle.has(path) {
			return true
		}
	}
	return false
}

// locate returns the first candidate present on disk.
func locate(paths []string) (string, bool) {
	for _, path := range paths {
		if fileutil.Exists(path) {
			return path, true
		}
	}
	return "", false
}
