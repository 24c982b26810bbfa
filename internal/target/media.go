package target

import (
	"fmt"
	"strings"
)

// MediaType identifies a physical media format.
type MediaType string

const (
	MediaCDROM        MediaType = "cdrom"
	MediaDVD          MediaType = "dvd"
	MediaBluRay       MediaType = "bluray"
	MediaHDDVD        MediaType = "hddvd"
	MediaGDROM        MediaType = "gdrom"
	MediaUMD          MediaType = "umd"
	MediaGameCube     MediaType = "nintendo_gamecube_disc"
	MediaWii          MediaType = "nintendo_wii_disc"
	MediaWiiU         MediaType = "nintendo_wiiu_disc"
	MediaLaserDisc    MediaType = "laserdisc"
	MediaFloppy       MediaType = "floppy"
	MediaHardDisk     MediaType = "harddisk"
	MediaFlash        MediaType = "flash"
	MediaCompactFlash MediaType = "compactflash"
	MediaSDCard       MediaType = "sdcard"
	MediaCartridge    MediaType = "cartridge"
	MediaCassette     MediaType = "cassette"
	MediaDAT          MediaType = "dat"
	MediaDLT          MediaType = "dlt"
	MediaZip          MediaType = "iomega_zip"
	MediaJaz          MediaType = "iomega_jaz"
	MediaMiniDisc     MediaType = "minidisc"
	MediaVHD          MediaType = "vhd"
	MediaCED          MediaType = "ced"
	MediaPD           MediaType = "phase_change_dual"
	MediaMO           MediaType = "magneto_optical"
	MediaVideoCD      MediaType = "video_cd"
	MediaSuperAudioCD MediaType = "super_audio_cd"
	MediaDVDAudio     MediaType = "dvd_audio"
	MediaNintendoDD   MediaType = "nintendo_64dd_disk"
	MediaFamicomDisk  MediaType = "famicom_disk"
)

type mediaInfo struct {
	name    string
	optical bool
}

var mediaTable = map[MediaType]mediaInfo{
	MediaCDROM:        {"CD-ROM", true},
	MediaDVD:          {"DVD", true},
	MediaBluRay:       {"BD-ROM", true},
	MediaHDDVD:        {"HD-DVD", true},
	MediaGDROM:        {"GD-ROM", true},
	MediaUMD:          {"UMD", true},
	MediaGameCube:     {"GameCube Game Disc", true},
	MediaWii:          {"Wii Optical Disc", true},
	MediaWiiU:         {"Wii U Optical Disc", true},
	MediaLaserDisc:    {"LaserDisc", true},
	MediaFloppy:       {"Floppy Disk", false},
	MediaHardDisk:     {"Hard Disk", false},
	MediaFlash:        {"Flash Drive", false},
	MediaCompactFlash: {"CompactFlash", false},
	MediaSDCard:       {"SD Card", false},
	MediaCartridge:    {"Cartridge", false},
	MediaCassette:     {"Cassette Tape", false},
	MediaDAT:          {"Digital Audio Tape", false},
	MediaDLT:          {"Digital Linear Tape", false},
	MediaZip:          {"Iomega Zip", false},
	MediaJaz:          {"Iomega Jaz", false},
	MediaMiniDisc:     {"MiniDisc", true},
	MediaVHD:          {"Video High Density Disc", true},
	MediaCED:          {"Capacitance Electronic Disc", false},
	MediaPD:           {"Phase-change Dual", true},
	MediaMO:           {"Magneto-Optical", true},
	MediaVideoCD:      {"Video CD", true},
	MediaSuperAudioCD: {"Super Audio CD", true},
	MediaDVDAudio:     {"DVD-Audio", true},
	MediaNintendoDD:   {"64DD Disk", false},
	MediaFamicomDisk:  {"Famicom Disk System Disk", false},
}

// Name returns the display name of the media type.
func (m MediaType) Name() string {
	if info, ok := mediaTable[m]; ok {
		return info.name
	}
	return string(m)
}

// Known reports whether the media type belongs to the closed set.
func (m MediaType) Known() bool {
	_, ok := mediaTable[m]
	return ok
}

// Optical reports whether the media is read by an optical drive.
func (m MediaType) Optical() bool {
	return mediaTable[m].optical
}

// ParseMediaType resolves an identifier or display name, ignoring case.
func ParseMediaType(value string) (MediaType, error) {
	needle := strings.ToLower(strings.TrimSpace(value))
	if needle == "" {
		return "", fmt.Errorf("media type required")
	}
	if _, ok := mediaTable[MediaType(needle)]; ok {
		return MediaType(needle), nil
	}
	for id, info := range mediaTable {
		if strings.ToLower(info.name) == needle {
			return id, nil
		}
	}
	return "", fmt.Errorf("unknown media type %q", value)
}
