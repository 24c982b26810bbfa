package ps3cfw

import "dumpdriver/internal/manifest"

var outputs = []manifest.Entry{
	{Names: []string{".iso"}, Attrs: manifest.Required},
	{Names: []string{".cue"}, Attrs: manifest.Archivable},
	{Names: []string{".getkey.log"}, Key: "getkey", Attrs: manifest.Required | manifest.Artifact | manifest.Archivable},
	{Names: []string{".disc.pic"}, Key: "pic", Attrs: manifest.Required | manifest.Artifact | manifest.Binary | manifest.Archivable},
}

// Outputs returns the expected output files relative to a dump's base path.
func Outputs() []manifest.Entry {
	return append([]manifest.Entry(nil), outputs...)
}
