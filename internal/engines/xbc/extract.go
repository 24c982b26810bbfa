package xbc

import (
	"path/filepath"
	"regexp"
	"strings"

	"dumpdriver/internal/extract"
	"dumpdriver/internal/target"
)

var banner = regexp.MustCompile(`Xbox Backup Creator\s+(v[0-9.]+(?:\s+Build:\s*\d+)?)`)

// Extract scrapes the log of an XBC dump rooted at base.
func Extract(src extract.Source, base string, system target.System, media target.MediaType) extract.Metadata {
	md := extract.Metadata{}
	logPath, ok := findLog(src, base)
	if ok {
		readLog(src, logPath, &md)
	}
	md.FillFromImage(base+".iso", src.Hasher)
	if len(md.Layerbreaks) == 1 {
		md.ClearSingleLayer(md.Layerbreaks[0])
	}
	return md
}

func findLog(src extract.Source, base string) (string, bool) {
	dir := filepath.Dir(base)
	for _, name := range []string{"Log.txt", "log.txt"} {
		path := filepath.Join(dir, name)
		if src.Has(path) {
			return path, true
		}
	}
	return "", false
}

func readLog(src extract.Source, path string, md *extract.Metadata) {
	src.ScanLines(path, func(line string) bool {
		trimmed := strings.TrimSpace(line)
		if match := banner.FindStringSubmatch(trimmed); match != nil && md.DumperVersion == "" {
			md.DumperVersion = match[1]
			return true
		}
		label, value, found := strings.Cut(trimmed, ":")
		if !found {
			return true
		}
		value = strings.TrimSpace(value)
		switch strings.TrimSpace(label) {
		case "Layerbreak":
			if layer, ok := extract.ParseInt(firstField(value)); ok && layer > 0 {
				md.Layerbreaks = []int64{layer}
			}
		case "CRC32":
			if hash, ok := extract.NormalizeHash(value); ok {
				md.CRC32 = hash
			}
		case "MD5":
			if hash, ok := extract.NormalizeHash(value); ok {
				md.MD5 = hash
			}
		case "SHA1", "SHA-1":
			if hash, ok := extract.NormalizeHash(value); ok {
				md.SHA1 = hash
			}
		}
		return true
	})
}

func firstField(raw string) string {
	if fields := strings.Fields(raw); len(fields) > 0 {
		return fields[0]
	}
	return ""
}
