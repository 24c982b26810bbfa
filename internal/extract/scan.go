package extract

import (
	"encoding/hex"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// SectorSize is the user-data size of one optical disc sector.
const SectorSize = 2048

const maxLineBytes = 4 << 20

var (
	romLine  = regexp.MustCompile(`<rom\s[^>]*/?>`)
	romAttrs = regexp.MustCompile(`(\w+)="([^"]*)"`)
)

// ParseROM decodes one `<rom name=".." size=".." crc=".." md5=".." sha1=".."/>`
// datafile line.
func ParseROM(line string) (ROM, bool) {
	match := romLine.FindString(line)
	if match == "" {
		return ROM{}, false
	}
	var rom ROM
	sized := false
	for _, attr := range romAttrs.FindAllStringSubmatch(match, -1) {
		switch attr[1] {
		case "name":
			rom.Name = unescapeXML(attr[2])
		case "size":
			n, err := strconv.ParseInt(attr[2], 10, 64)
			if err != nil {
				return ROM{}, false
			}
			rom.Size, sized = n, true
		case "crc":
			rom.CRC32 = strings.ToLower(attr[2])
		case "md5":
			rom.MD5 = strings.ToLower(attr[2])
		case "sha1":
			rom.SHA1 = strings.ToLower(attr[2])
		}
	}
	if rom.Name == "" || !sized {
		return ROM{}, false
	}
	return rom, true
}

var xmlUnescaper = strings.NewReplacer("&amp;", "&", "&lt;", "<", "&gt;", ">", "&quot;", `"`, "&apos;", "'")

func unescapeXML(value string) string {
	return xmlUnescaper.Replace(value)
}

// pvdRows is the number of hex dump rows that make up the PVD excerpt.
const pvdRows = 6

// FileSize returns the size of a regular file.
func FileSize(path string) (int64, bool) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return 0, false
	}
	return info.Size(), true
}

// HexBlock renders data as uppercase hex with 16 bytes per line. A positive
// group inserts a space after every group bytes.
func HexBlock(data []byte, group int) string {
	if len(data) == 0 {
		return ""
	}
	var b strings.Builder
	for row := 0; row < len(data); row += 16 {
		end := min(row+16, len(data))
		for i := row; i < end; i++ {
			if group > 0 && i > row && (i-row)%group == 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strings.ToUpper(hex.EncodeToString(data[i : i+1])))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// ParseInt parses a decimal or 0x-prefixed hexadecimal integer.
func ParseInt(raw string) (int64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	base := 10
	if hexDigits, ok := strings.CutPrefix(strings.ToLower(raw), "0x"); ok {
		raw, base = hexDigits, 16
	}
	value, err := strconv.ParseInt(raw, base, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// SingleLayer reports whether a first-layer length in sectors accounts for
// the whole image size.
func SingleLayer(layer0Sectors, size int64) bool {
	return layer0Sectors > 0 && layer0Sectors*SectorSize == size
}

// NormalizeHash lowercases a hex digest and rejects anything that is not
// hex.
func NormalizeHash(raw string) (string, bool) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return "", false
	}
	if _, err := hex.DecodeString(value); err != nil {
		return "", false
	}
	return value, true
}
