package ps3cfw

import (
	"strings"

	"dumpdriver/internal/extract"
	"dumpdriver/internal/target"
)

const (
	picOffset = 4
	picLength = 128

	discIDLength = 32
	// The last four bytes of the disc ID are unique to the console that
	// read the disc and are never published.
	discIDMask = "XXXXXXXX"
)

// Extract scrapes the getkey log and PIC of a PS3 dump rooted at base.
func Extract(src extract.Source, base string, system target.System, media target.MediaType) extract.Metadata {
	md := extract.Metadata{}
	keyLog := base + ".getkey.log"

	if key, ok := src.FindValue(keyLog, "disc_key ="); ok && key != "" {
		md.DiscKey = strings.ToUpper(key)
	}
	if id, ok := src.FindValue(keyLog, "disc_id ="); ok {
		if masked, ok := MaskDiscID(id); ok {
			md.DiscID = masked
		}
	}
	if data, ok := src.ReadBinary(base+".disc.pic", picOffset, picLength); ok {
		md.PIC = extract.HexBlock(data, 0)
	}
	md.FillFromImage(base+".iso", src.Hasher)
	return md
}

// MaskDiscID uppercases a 32 character disc ID and replaces its console
// specific tail.
func MaskDiscID(id string) (string, bool) {
	id = strings.ToUpper(strings.TrimSpace(id))
	if len(id) != discIDLength {
		return "", false
	}
	return id[:discIDLength-len(discIDMask)] + discIDMask, true
}
