package textutil

import "strings"

// fileNameReplacer maps characters that are unsafe on common filesystems.
// Path separators and drive colons become dashes so "Disc 1/2" stays
// readable; the rest are dropped.
var fileNameReplacer = strings.NewReplacer(
	"/", "-",
	"\\", "-",
	":", "-",
	"*", "-",
	"?", "",
	"\"", "",
	"<", "",
	">", "",
	"|", "",
)

// SanitizeFileName turns a dump title into a name usable as both a directory
// and an image base name. Whitespace runs collapse to one space and trailing
// dots are removed, since Windows drops them silently.
func SanitizeFileName(name string) string {
	name = strings.Join(strings.Fields(fileNameReplacer.Replace(name)), " ")
	return strings.TrimSpace(strings.TrimRight(name, "."))
}
