package xbc

import "dumpdriver/internal/manifest"

const binaryFile = manifest.Required | manifest.Artifact | manifest.Binary | manifest.Archivable

// XBC writes its log and security files next to the image under fixed
// names, so every entry except the image is resolved in the directory.
var outputs = []manifest.Entry{
	{Names: []string{".iso"}, Attrs: manifest.Required},
	{Names: []string{"Log.txt", "log.txt"}, InDir: true, Key: "log", Attrs: manifest.Required | manifest.Artifact | manifest.Archivable},
	{Names: []string{"DMI.bin"}, InDir: true, Key: "dmi", Attrs: binaryFile},
	{Names: []string{"PFI.bin"}, InDir: true, Key: "pfi", Attrs: binaryFile},
	{Names: []string{"SS.bin"}, InDir: true, Key: "ss", Attrs: binaryFile},
}

// Outputs returns the expected output files relative to a dump's base path.
func Outputs() []manifest.Entry {
	return append([]manifest.Entry(nil), outputs...)
}
