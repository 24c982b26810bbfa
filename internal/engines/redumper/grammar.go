package redumper

import "dumpdriver/internal/params"

// Modes. The implicit mode behaves like ModeDisc.
const (
	ModeDisc       params.Command = "disc"
	ModeDump       params.Command = "dump"
	ModeRefine     params.Command = "refine"
	ModeVerify     params.Command = "verify"
	ModeDVDKey     params.Command = "dvdkey"
	ModeProtection params.Command = "protection"
	ModeSplit      params.Command = "split"
	ModeHash       params.Command = "hash"
	ModeInfo       params.Command = "info"
	ModeSkeleton   params.Command = "skeleton"
	ModeEject      params.Command = "eject"
)

// General flags.
const (
	FlagVerbose   = "--verbose"
	FlagAutoEject = "--auto-eject"
	FlagDebug     = "--debug"
	FlagDrive     = "--drive"
	FlagSpeed     = "--speed"
	FlagRetries   = "--retries"
	FlagImagePath = "--image-path"
	FlagImageName = "--image-name"
	FlagOverwrite = "--overwrite"
)

// Drive configuration flags. FlagSectorOrder is the older spelling of
// FlagDriveSectorOrder and takes the same values.
const (
	FlagDriveType            = "--drive-type"
	FlagDriveReadOffset      = "--drive-read-offset"
	FlagDriveC2Shift         = "--drive-c2-shift"
	FlagDrivePregapStart     = "--drive-pregap-start"
	FlagDriveReadMethod      = "--drive-read-method"
	FlagDriveSectorOrder     = "--drive-sector-order"
	FlagSectorOrder          = "--sector-order"
	FlagPlextorSkipLeadin    = "--plextor-skip-leadin"
	FlagPlextorLeadinRetries = "--plextor-leadin-retries"
	FlagAsusSkipLeadout      = "--asus-skip-leadout"
	FlagDisableCDText        = "--disable-cdtext"
)

// Offset and split flags.
const (
	FlagForceOffset           = "--force-offset"
	FlagAudioSilenceThreshold = "--audio-silence-threshold"
	FlagCorrectOffsetShift    = "--correct-offset-shift"
	FlagOffsetShiftRelocate   = "--offset-shift-relocate"
	FlagForceSplit            = "--force-split"
	FlagLeaveUnchanged        = "--leave-unchanged"
	FlagForceQTOC             = "--force-qtoc"
	FlagSkipFill              = "--skip-fill"
	FlagISO9660Trim           = "--iso9660-trim"
)

// Dump range and miscellaneous flags.
const (
	FlagLBAStart         = "--lba-start"
	FlagLBAEnd           = "--lba-end"
	FlagRefineSubchannel = "--refine-subchannel"
	FlagSkip             = "--skip"
	FlagDumpWriteOffset  = "--dump-write-offset"
	FlagDumpReadSize     = "--dump-read-size"
	FlagOverreadLeadout  = "--overread-leadout"
	FlagForceUnscrambled = "--force-unscrambled"
	FlagLegacySubs       = "--legacy-subs"
	FlagTrain            = "--train"
)

// Accepted drive types, read methods, and sector orders.
var (
	DriveTypes   = []string{"GENERIC", "PLEXTOR", "LG_ASU8A", "LG_ASU8B", "LG_ASU8C", "LG_ASU3", "LG_ASU2"}
	ReadMethods  = []string{"BE", "D8", "BE_CDDA"}
	SectorOrders = []string{"DATA_C2_SUB", "DATA_SUB_C2", "DATA_SUB", "DATA_C2"}
)

var (
	everyMode  = []params.Command{params.Implicit, ModeDisc, ModeDump, ModeRefine, ModeVerify, ModeDVDKey, ModeProtection, ModeSplit, ModeHash, ModeInfo, ModeSkeleton, ModeEject}
	imageModes = []params.Command{params.Implicit, ModeDisc, ModeDump, ModeRefine, ModeVerify, ModeDVDKey, ModeProtection, ModeSplit, ModeHash, ModeInfo, ModeSkeleton}
	readModes  = []params.Command{params.Implicit, ModeDisc, ModeDump, ModeRefine, ModeVerify, ModeDVDKey, ModeProtection}
	splitModes = []params.Command{params.Implicit, ModeDisc, ModeSplit}
)

func presence(name string, commands []params.Command) params.Flag {
	return params.Flag{Name: name, Kind: params.KindPresence, Style: params.StyleEquals, Commands: commands}
}

func integer(name string, commands []params.Command) params.Flag {
	return params.Flag{Name: name, Kind: params.KindInt, Style: params.StyleEquals, Commands: commands}
}

func text(name string, commands []params.Command, choices ...string) params.Flag {
	return params.Flag{Name: name, Kind: params.KindString, Style: params.StyleEquals, Choices: choices, Commands: commands}
}

var grammar = &params.Grammar{
	Commands:        []params.Command{ModeDisc, ModeDump, ModeRefine, ModeVerify, ModeDVDKey, ModeProtection, ModeSplit, ModeHash, ModeInfo, ModeSkeleton, ModeEject},
	ImplicitAllowed: true,
	Flags: []params.Flag{
		presence(FlagVerbose, everyMode),
		presence(FlagAutoEject, readModes),
		presence(FlagDebug, everyMode),
		text(FlagDrive, everyMode),
		integer(FlagSpeed, readModes),
		integer(FlagRetries, readModes),
		text(FlagImagePath, imageModes),
		text(FlagImageName, imageModes),
		presence(FlagOverwrite, imageModes),

		text(FlagDriveType, readModes, DriveTypes...),
		integer(FlagDriveReadOffset, readModes),
		integer(FlagDriveC2Shift, readModes),
		integer(FlagDrivePregapStart, readModes),
		text(FlagDriveReadMethod, readModes, ReadMethods...),
		text(FlagDriveSectorOrder, readModes, SectorOrders...),
		text(FlagSectorOrder, readModes, SectorOrders...),
		presence(FlagPlextorSkipLeadin, readModes),
		integer(FlagPlextorLeadinRetries, readModes),
		presence(FlagAsusSkipLeadout, readModes),
		presence(FlagDisableCDText, readModes),

		integer(FlagForceOffset, splitModes),
		integer(FlagAudioSilenceThreshold, splitModes),
		presence(FlagCorrectOffsetShift, splitModes),
		presence(FlagOffsetShiftRelocate, splitModes),
		presence(FlagForceSplit, splitModes),
		presence(FlagLeaveUnchanged, splitModes),
		presence(FlagForceQTOC, splitModes),
		integer(FlagSkipFill, splitModes),
		presence(FlagISO9660Trim, splitModes),

		integer(FlagLBAStart, readModes),
		integer(FlagLBAEnd, readModes),
		presence(FlagRefineSubchannel, readModes),
		text(FlagSkip, readModes),
		integer(FlagDumpWriteOffset, readModes),
		integer(FlagDumpReadSize, readModes),
		presence(FlagOverreadLeadout, readModes),
		presence(FlagForceUnscrambled, readModes),
		presence(FlagLegacySubs, readModes),
		presence(FlagTrain, readModes),
	},
}

// Grammar returns the redumper command-line grammar.
func Grammar() *params.Grammar {
	return grammar
}
