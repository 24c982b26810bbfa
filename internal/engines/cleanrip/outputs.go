package cleanrip

import "dumpdriver/internal/manifest"

var outputs = []manifest.Entry{
	{Names: []string{".iso"}, Attrs: manifest.Required},
	{Names: []string{"-dumpinfo.txt"}, Key: "dumpinfo", Attrs: manifest.Required | manifest.Artifact | manifest.Archivable},
	{Names: []string{".bca"}, Key: "bca", Attrs: manifest.Required | manifest.Artifact | manifest.Binary | manifest.Archivable},
}

// Outputs returns the expected output files relative to a dump's base path.
func Outputs() []manifest.Entry {
	return append([]manifest.Entry(nil), outputs...)
}
