package redumper

import (
	"strings"

	"dumpdriver/internal/extract"
	"dumpdriver/internal/target"
)

const (
	bannerPrefix = "redumper "
	pvdHeader    = "PVD:"
	datHeader    = "dat:"
)

// Extract scrapes the log of a redumper run rooted at base.
func Extract(src extract.Source, base string, system target.System, media target.MediaType) extract.Metadata {
	md := extract.Metadata{}
	logPath := base + ".log"

	if version, ok := dumperVersion(src, logPath); ok {
		md.DumperVersion = version
	}
	if roms, ok := datEntries(src, logPath); ok {
		md.ROMs = roms
		if len(roms) == 1 {
			md.ApplyROM(roms[0])
		}
	}
	if pvd, ok := src.ReadPVD(logPath, pvdHeader); ok {
		md.PVD = pvd
	}
	if breaks, ok := layerbreaks(src, logPath); ok {
		md.Layerbreaks = breaks
	}
	if serial, ok := src.FindValue(logPath, "serial:"); ok && serial != "" {
		md.InternalSerial = serial
	}
	if version, ok := src.FindValue(logPath, "version:"); ok && version != "" {
		md.Version = version
	}
	if name, ok := src.FindValue(logPath, "region:"); ok {
		if region, ok := target.ParseRegion(name); ok {
			md.Region = region
		}
	}
	if key, ok := src.FindValue(logPath, "disc key:"); ok && key != "" {
		md.DiscKey = strings.ToUpper(strings.Join(strings.Fields(key), ""))
	}

	switch media {
	case target.MediaDVD, target.MediaDVDAudio, target.MediaBluRay, target.MediaHDDVD:
		md.FillFromImage(base+".iso", src.Hasher)
	}
	if len(md.Layerbreaks) == 1 {
		md.ClearSingleLayer(md.Layerbreaks[0])
	}
	return md
}

// dumperVersion reads "redumper v2024.01.01 build_42 [Jan  1 2024, 00:00:00]".
func dumperVersion(src extract.Source, path string) (string, bool) {
	var (
		version string
		found   bool
	)
	src.ScanLines(path, func(line string) bool {
		rest, ok := strings.CutPrefix(strings.TrimSpace(line), bannerPrefix)
		if !ok {
			return true
		}
		if idx := strings.Index(rest, " ["); idx >= 0 {
			rest = rest[:idx]
		}
		version = strings.TrimSpace(rest)
		found = version != ""
		return !found
	})
	return version, found
}

// datEntries returns the ROM lines of the last "dat:" block. A log holds
// one block per run and the last run describes the final image.
func datEntries(src extract.Source, path string) ([]extract.ROM, bool) {
	var (
		last    []extract.ROM
		current []extract.ROM
		inBlock bool
	)
	src.ScanLines(path, func(line string) bool {
		trimmed := strings.TrimSpace(line)
		if trimmed == datHeader {
			inBlock, current = true, nil
			return true
		}
		if !inBlock {
			return true
		}
		if rom, ok := extract.ParseROM(trimmed); ok {
			current = append(current, rom)
			return true
		}
		inBlock = false
		if len(current) > 0 {
			last = current
		}
		return true
	})
	if inBlock && len(current) > 0 {
		last = current
	}
	return last, len(last) > 0
}

// layerbreaks collects the distinct values of "layer break: N" and
// "layer break (layer: 1): N" lines in log order.
func layerbreaks(src extract.Source, path string) ([]int64, bool) {
	var breaks []int64
	seen := map[int64]bool{}
	src.ScanLines(path, func(line string) bool {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "layer break") {
			return true
		}
		idx := strings.LastIndex(trimmed, ":")
		if idx < 0 {
			return true
		}
		value, ok := extract.ParseInt(strings.TrimSpace(trimmed[idx+1:]))
		if !ok || value <= 0 || seen[value] {
			return true
		}
		seen[value] = true
		breaks = append(breaks, value)
		return true
	})
	return breaks, len(breaks) > 0
}
