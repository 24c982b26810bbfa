package redumper

import (
	"dumpdriver/internal/manifest"
	"dumpdriver/internal/target"
)

const (
	logFile    = manifest.Required | manifest.Artifact | manifest.Archivable
	binaryFile = manifest.Required | manifest.Artifact | manifest.Binary | manifest.Archivable
)

var (
	cdMedia       = []target.MediaType{target.MediaCDROM, target.MediaVideoCD}
	discMedia     = []target.MediaType{target.MediaDVD, target.MediaDVDAudio, target.MediaBluRay, target.MediaHDDVD}
	dvdMedia      = []target.MediaType{target.MediaDVD, target.MediaDVDAudio, target.MediaHDDVD}
	xboxSystems   = []target.System{target.SystemMicrosoftXbox, target.SystemMicrosoftXbox360}
	xboxDiscMedia = []target.MediaType{target.MediaDVD}
)

var outputs = []manifest.Entry{
	{Names: []string{".log"}, Key: "log", Attrs: logFile},
	{Names: []string{".cue"}, Attrs: manifest.Required, Media: cdMedia},
	{Names: []string{".toc"}, Key: "toc", Attrs: binaryFile, Media: cdMedia},
	{Names: []string{".fulltoc"}, Key: "fulltoc", Attrs: binaryFile, Media: cdMedia},
	{Names: []string{".subcode"}, Attrs: manifest.Required | manifest.Archivable, Media: cdMedia},
	{Names: []string{".scram", ".scrap"}, Attrs: manifest.Deletable, Media: cdMedia},
	{Names: []string{".cdtext"}, Key: "cdtext", Attrs: manifest.Artifact | manifest.Binary | manifest.Archivable, Media: cdMedia},
	{Names: []string{".state"}, Attrs: manifest.Required | manifest.Archivable},
	{Names: []string{".physical"}, Key: "physical", Attrs: binaryFile, Media: discMedia},
	{Names: []string{".manufacturer"}, Key: "manufacturer", Attrs: binaryFile, Media: dvdMedia},
	{Names: []string{".security"}, Key: "security", Attrs: binaryFile, Media: xboxDiscMedia, Systems: xboxSystems},
	{Names: []string{".skeleton"}, Attrs: manifest.Archivable},
}

// Outputs returns the expected output files relative to a dump's base path.
func Outputs() []manifest.Entry {
	return append([]manifest.Entry(nil), outputs...)
}
