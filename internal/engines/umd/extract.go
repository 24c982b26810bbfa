package umd

import (
	"strings"

	"dumpdriver/internal/extract"
	"dumpdriver/internal/target"
)

const pvdHeader = "LBA[000016, 0x00010]"

// Extract scrapes the logs of a UmdImageCreator dump rooted at base.
func Extract(src extract.Source, base string, system target.System, media target.MediaType) extract.Metadata {
	md := extract.Metadata{}
	disc := base + "_disc.txt"

	if title, ok := src.FindValue(disc, "TITLE:"); ok && title != "" {
		md.InternalName = title
	}
	if id, ok := src.FindValue(disc, "DISC_ID:"); ok && id != "" {
		md.InternalSerial = id
	}
	if version, ok := src.FindValue(disc, "DISC_VERSION:"); ok && version != "" {
		md.Version = version
	}
	if raw, ok := src.FindValue(disc, "FileSize:"); ok {
		if size, ok := extract.ParseInt(firstField(raw)); ok {
			md.SetSize(size)
		}
	}
	if layer0, ok := layerZeroLength(src, disc); ok {
		md.Layerbreaks = []int64{layer0}
	}
	if pvd, ok := src.ReadPVD(base+"_mainInfo.txt", pvdHeader); ok {
		md.PVD = pvd
	}

	md.FillFromImage(base+".iso", src.Hasher)
	if len(md.Layerbreaks) == 1 {
		md.ClearSingleLayer(md.Layerbreaks[0])
	}
	return md
}

// layerZeroLength reads the third field of "L0 length: 123456 (0x1E240)".
func layerZeroLength(src extract.Source, path string) (int64, bool) {
	var (
		value int64
		found bool
	)
	src.ScanLines(path, func(line string) bool {
		fields := strings.Fields(line)
		if len(fields) < 3 || fields[0] != "L0" || !strings.HasPrefix(fields[1], "length") {
			return true
		}
		value, found = extract.ParseInt(fields[2])
		return !found
	})
	return value, found
}

func firstField(raw string) string {
	if fields := strings.Fields(raw); len(fields) > 0 {
		return fields[0]
	}
	return ""
}
