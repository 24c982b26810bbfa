package dic

import (
	"regexp"
	"strings"

	"dumpdriver/internal/extract"
	"dumpdriver/internal/target"
)

const (
	mainChannelPVD = "LBA[000016, 0x00010]: Main Channel"
	// picOffset skips the response header DiscImageCreator stores before
	// the disc information block.
	picOffset = 4
	picLength = 128
)

var versionBanner = regexp.MustCompile(`\b(\d{8}T\d{6})\b`)

// Extract scrapes the logs of a DiscImageCreator run rooted at base.
func Extract(src extract.Source, base string, system target.System, media target.MediaType) extract.Metadata {
	md := extract.Metadata{}

	if roms, ok := src.ReadROMs(base + ".dat"); ok {
		md.ROMs = roms
		if len(roms) == 1 {
			md.ApplyROM(roms[0])
		}
	}
	if version, ok := dumperVersion(src, base); ok {
		md.DumperVersion = version
	}
	if pvd, ok := src.ReadPVD(base+"_mainInfo.txt", mainChannelPVD); ok {
		md.PVD = pvd
	}

	switch media {
	case target.MediaDVD, target.MediaHDDVD, target.MediaDVDAudio:
		if layer0, ok := layerZeroSector(src, base+"_disc.txt"); ok {
			md.Layerbreaks = []int64{layer0}
		}
	case target.MediaBluRay:
		if data, ok := src.ReadBinary(base+"_PIC.bin", picOffset, picLength); ok {
			md.PIC = extract.HexBlock(data, 0)
		}
	}

	cmd, _ := CommandFor(system, media)
	if ImageExtension(cmd) == ".iso" {
		md.FillFromImage(base+".iso", src.Hasher)
	}
	if len(md.Layerbreaks) == 1 {
		md.ClearSingleLayer(md.Layerbreaks[0])
	}
	return md
}

func dumperVersion(src extract.Source, base string) (string, bool) {
	for _, suffix := range []string{"_mainInfo.txt", "_disc.txt"} {
		line, ok := src.FirstLine(base + suffix)
		if !ok {
			continue
		}
		if match := versionBanner.FindString(line); match != "" {
			return match, true
		}
	}
	return "", false
}

// layerZeroSector reads "LayerZeroSector: 2084960 (0x1FD0A0)".
func layerZeroSector(src extract.Source, path string) (int64, bool) {
	value, ok := src.FindValue(path, "LayerZeroSector:")
	if !ok {
		return 0, false
	}
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return 0, false
	}
	return extract.ParseInt(fields[0])
}
