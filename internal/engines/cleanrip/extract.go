package cleanrip

import (
	"bytes"
	"fmt"
	"strings"

	"dumpdriver/internal/extract"
	"dumpdriver/internal/target"
)

// Magic is the first line of every CleanRip dump info file.
const Magic = "--File Generated by CleanRip"

// Disc header layout shared by GameCube and Wii discs.
const (
	headerSize     = 0x400
	gameCodeLength = 4
	makerOffset    = 4
	makerLength    = 2
	versionOffset  = 7
	nameOffset     = 0x20
)

// Extract scrapes the dump info file, BCA, and disc header of a CleanRip
// dump rooted at base.
func Extract(src extract.Source, base string, system target.System, media target.MediaType) extract.Metadata {
	md := extract.Metadata{}
	image := base + ".iso"

	readDumpInfo(src, base+"-dumpinfo.txt", &md)
	if data, ok := src.ReadBinary(base+".bca", 0, -1); ok {
		md.BCA = extract.HexBlock(data, 2)
	}
	if header, ok := src.ReadBinary(image, 0, headerSize); ok {
		readHeader(header, &md)
	}
	if size, ok := extract.FileSize(image); ok {
		md.SetSize(size)
	}
	md.FillFromImage(image, src.Hasher)
	return md
}

func readDumpInfo(src extract.Source, path string, md *extract.Metadata) {
	first, ok := src.FirstLine(path)
	if !ok {
		return
	}
	banner, ok := strings.CutPrefix(strings.TrimSpace(first), Magic)
	if !ok {
		return
	}
	if version := strings.TrimSpace(banner); version != "" {
		md.DumperVersion = version
	}
	src.ScanLines(path, func(line string) bool {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "CRC32"):
			if value, ok := hashValue(trimmed, "CRC32"); ok {
				md.CRC32 = value
			}
		case strings.HasPrefix(trimmed, "MD5"):
			if value, ok := hashValue(trimmed, "MD5"); ok {
				md.MD5 = value
			}
		case strings.HasPrefix(trimmed, "SHA-1"):
			if value, ok := hashValue(trimmed, "SHA-1"); ok {
				md.SHA1 = value
			}
		}
		return true
	})
}

// hashValue reads "MD5: abc..." after stripping the label and its colon.
func hashValue(line, label string) (string, bool) {
	rest := strings.TrimPrefix(line, label)
	rest = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(rest), ":"))
	return extract.NormalizeHash(rest)
}

// readHeader decodes the game code, maker, version byte, and title of the
// disc header.
func readHeader(header []byte, md *extract.Metadata) {
	code := printable(header[:gameCodeLength])
	maker := printable(header[makerOffset : makerOffset+makerLength])
	if len(code) != gameCodeLength || len(maker) != makerLength {
		return
	}
	md.InternalSerial = code + maker
	if region, ok := target.NintendoSerialRegion(code); ok {
		md.Region = region
	}
	md.Version = fmt.Sprintf("1.%02d", header[versionOffset])

	name := header[nameOffset:]
	if end := bytes.IndexByte(name, 0); end >= 0 {
		name = name[:end]
	}
	if title := strings.TrimSpace(string(name)); title != "" {
		md.InternalName = title
	}
}

func printable(data []byte) string {
	for _, b := range data {
		if b < 0x20 || b > 0x7e {
			return ""
		}
	}
	return string(data)
}
