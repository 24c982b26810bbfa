package dic

import (
	"dumpdriver/internal/manifest"
	"dumpdriver/internal/target"
)

const (
	logFile         = manifest.Required | manifest.Artifact | manifest.Archivable
	optionalLogFile = manifest.Artifact | manifest.Archivable
	binaryFile      = manifest.Required | manifest.Artifact | manifest.Binary | manifest.Archivable
)

var (
	cdMedia     = []target.MediaType{target.MediaCDROM, target.MediaGDROM, target.MediaVideoCD}
	discMedia   = []target.MediaType{target.MediaDVD, target.MediaHDDVD, target.MediaBluRay, target.MediaDVDAudio}
	xboxSystems = []target.System{target.SystemMicrosoftXbox, target.SystemMicrosoftXbox360}
)

var outputs = []manifest.Entry{
	{Names: []string{".cue"}, Attrs: manifest.Required, Media: cdMedia},
	{Names: []string{".ccd"}, Attrs: manifest.Required, Media: []target.MediaType{target.MediaCDROM, target.MediaVideoCD}},
	{Names: []string{".dat"}, Key: "dat", Attrs: logFile},
	{Names: []string{".img"}, Attrs: manifest.Deletable, Media: cdMedia},
	{Names: []string{".scm"}, Attrs: manifest.Deletable, Media: cdMedia},
	{Names: []string{".sub"}, Attrs: manifest.Required, Media: cdMedia},
	{Names: []string{".raw"}, Attrs: manifest.Deletable, Media: discMedia},
	{Names: []string{"_c2Error.txt"}, Key: "c2_error", Attrs: optionalLogFile, Media: cdMedia},
	{Names: []string{"_cmd.txt"}, Key: "cmd", Attrs: optionalLogFile},
	{Names: []string{"_CSSKey.txt"}, Key: "css_key", Attrs: optionalLogFile, Media: discMedia},
	{Names: []string{"_disc.txt"}, Key: "disc", Attrs: logFile},
	{Names: []string{"_drive.txt"}, Key: "drive", Attrs: logFile},
	{Names: []string{"_img.cue"}, Key: "img_cue", Attrs: logFile, Media: cdMedia},
	{Names: []string{"_mainError.txt"}, Key: "main_error", Attrs: logFile},
	{Names: []string{"_mainInfo.txt"}, Key: "main_info", Attrs: logFile},
	{Names: []string{"_subError.txt"}, Key: "sub_error", Attrs: logFile, Media: cdMedia},
	{Names: []string{"_subInfo.txt"}, Key: "sub_info", Attrs: logFile, Media: cdMedia},
	{Names: []string{"_subIntention.txt"}, Key: "sub_intention", Attrs: optionalLogFile, Media: cdMedia},
	{Names: []string{"_subReadable.txt", "_sub.txt"}, Key: "sub_readable", Attrs: optionalLogFile, Media: cdMedia},
	{Names: []string{"_suppl.dat"}, Key: "suppl_dat", Attrs: optionalLogFile},
	{Names: []string{"_volDesc.txt"}, Key: "vol_desc", Attrs: logFile, Media: append(append([]target.MediaType{}, cdMedia...), discMedia...)},
	{Names: []string{"_PIC.bin"}, Key: "pic", Attrs: binaryFile, Media: []target.MediaType{target.MediaBluRay}},
	{Names: []string{"_DMI.bin"}, Key: "dmi", Attrs: binaryFile, Media: []target.MediaType{target.MediaDVD}, Systems: xboxSystems},
	{Names: []string{"_PFI.bin"}, Key: "pfi", Attrs: binaryFile, Media: []target.MediaType{target.MediaDVD}, Systems: xboxSystems},
	{Names: []string{"_SS.bin"}, Key: "ss", Attrs: binaryFile, Media: []target.MediaType{target.MediaDVD}, Systems: xboxSystems},
}

// Outputs returns the expected output files relative to a dump's base path.
func Outputs() []manifest.Entry {
	return append([]manifest.Entry(nil), outputs...)
}
