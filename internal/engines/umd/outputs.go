package umd

import "dumpdriver/internal/manifest"

const logFile = manifest.Required | manifest.Artifact | manifest.Archivable

var outputs = []manifest.Entry{
	{Names: []string{".iso"}, Attrs: manifest.Required},
	{Names: []string{"_disc.txt"}, Key: "disc", Attrs: logFile},
	{Names: []string{"_mainError.txt"}, Key: "main_error", Attrs: logFile},
	{Names: []string{"_mainInfo.txt"}, Key: "main_info", Attrs: logFile},
	{Names: []string{"_volDesc.txt"}, Key: "vol_desc", Attrs: logFile},
}

// Outputs returns the expected output files relative to a dump's base path.
func Outputs() []manifest.Entry {
	return append([]manifest.Entry(nil), outputs...)
}
