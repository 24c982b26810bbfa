package dic

import "dumpdriver/internal/params"

// Base commands.
const (
	CommandAudio       params.Command = "audio"
	CommandBluRay      params.Command = "bd"
	CommandCompactDisc params.Command = "cd"
	CommandClose       params.Command = "close"
	CommandData        params.Command = "data"
	CommandDisk        params.Command = "disk"
	CommandDriveSpeed  params.Command = "drivespeed"
	CommandDVD         params.Command = "dvd"
	CommandEject       params.Command = "eject"
	CommandFloppy      params.Command = "fd"
	CommandGDROM       params.Command = "gd"
	CommandList        params.Command = "ls"
	CommandMDS         params.Command = "mds"
	CommandMerge       params.Command = "merge"
	CommandReset       params.Command = "reset"
	CommandSACD        params.Command = "sacd"
	CommandStart       params.Command = "start"
	CommandStop        params.Command = "stop"
	CommandSub         params.Command = "sub"
	CommandSwap        params.Command = "swap"
	CommandVersion     params.Command = "version"
	CommandXbox        params.Command = "xbox"
)

// Positional arguments.
const (
	PosDrive     = "drive"
	PosFilename  = "filename"
	PosMergeFile = "merge-filename"
	PosSpeed     = "speed"
	PosStartLBA  = "start-lba"
	PosEndLBA    = "end-lba"
)

// Flags.
const (
	FlagAddOffset              = "/a"
	FlagAtariJaguar            = "/aj"
	FlagBEOpcode               = "/be"
	FlagC2Opcode               = "/c2"
	FlagCopyrightManagement    = "/c"
	FlagD8Opcode               = "/d8"
	FlagDatExpand              = "/d"
	FlagDisableBeep            = "/q"
	FlagExtractMicroSoftCab    = "/mscf"
	FlagForceUnitAccess        = "/f"
	FlagMultiSectorRead        = "/mr"
	FlagMultiSession           = "/ms"
	FlagNoFixSubP              = "/np"
	FlagNoFixSubQ              = "/nq"
	FlagNoFixSubQLibCrypt      = "/nl"
	FlagNoFixSubRtoW           = "/nr"
	FlagNoFixSubQSecuROM       = "/ns"
	FlagNoSkipSS               = "/nss"
	FlagPadSector              = "/ps"
	FlagRange                  = "/ra"
	FlagRaw                    = "/raw"
	FlagResume                 = "/re"
	FlagReverse                = "/r"
	FlagRetryCount             = "/rr"
	FlagScanAntiMod            = "/am"
	FlagScanFileProtect        = "/sf"
	FlagScanSectorProtect      = "/ss"
	FlagSeventyFour            = "/74"
	FlagSkipSector             = "/sk"
	FlagSubchannelReadLevel    = "/s"
	FlagTages                  = "/t"
	FlagTryReadingPregap       = "/trp"
	FlagUseAnchorVolumeDescPtr = "/avdp"
	FlagVideoNow               = "/vn"
	FlagVideoNowColor          = "/vnc"
	FlagVideoNowXP             = "/vnx"
)

var (
	cdCommands   = []params.Command{CommandCompactDisc, CommandSwap}
	readCommands = []params.Command{CommandAudio, CommandData}
	allCD        = join(cdCommands, readCommands)
	cdAndGD      = join(allCD, []params.Command{CommandGDROM})
	discCommands = []params.Command{CommandDVD, CommandBluRay, CommandXbox}
	everyDump    = join(cdAndGD, discCommands, []params.Command{CommandFloppy, CommandDisk, CommandSACD})
)

func join(groups ...[]params.Command) []params.Command {
	var out []params.Command
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func presence(name string, commands ...[]params.Command) params.Flag {
	return params.Flag{Name: name, Kind: params.KindPresence, Commands: join(commands...)}
}

func ints(name string, lo, hi int, commands ...[]params.Command) params.Flag {
	return params.Flag{Name: name, Kind: params.KindInt, MinValues: lo, MaxValues: hi, Commands: join(commands...)}
}

func positional(name string, kind params.Kind) params.Flag {
	return params.Flag{Name: name, Kind: kind, Style: params.StylePositional}
}

var grammar = &params.Grammar{
	Commands: []params.Command{
		CommandAudio, CommandBluRay, CommandCompactDisc, CommandClose, CommandData,
		CommandDisk, CommandDriveSpeed, CommandDVD, CommandEject, CommandFloppy,
		CommandGDROM, CommandList, CommandMDS, CommandMerge, CommandReset,
		CommandSACD, CommandStart, CommandStop, CommandSub, CommandSwap,
		CommandVersion, CommandXbox,
	},
	Flags: []params.Flag{
		positional(PosDrive, params.KindString),
		positional(PosFilename, params.KindString),
		positional(PosMergeFile, params.KindString),
		positional(PosSpeed, params.KindInt),
		positional(PosStartLBA, params.KindInt),
		positional(PosEndLBA, params.KindInt),

		ints(FlagAddOffset, 1, 1, cdCommands),
		presence(FlagAtariJaguar, cdCommands),
		{Name: FlagBEOpcode, Kind: params.KindString, Choices: []string{"raw", "pack"}, Commands: cdAndGD},
		ints(FlagC2Opcode, 0, 4, cdAndGD),
		presence(FlagCopyrightManagement, []params.Command{CommandDVD}),
		presence(FlagD8Opcode, cdAndGD),
		presence(FlagDatExpand, everyDump),
		presence(FlagDisableBeep, everyDump),
		presence(FlagExtractMicroSoftCab, cdCommands),
		ints(FlagForceUnitAccess, 0, 1, cdAndGD, discCommands),
		ints(FlagMultiSectorRead, 0, 1, allCD),
		presence(FlagMultiSession, cdCommands),
		presence(FlagNoFixSubP, cdAndGD),
		presence(FlagNoFixSubQ, cdAndGD),
		presence(FlagNoFixSubQLibCrypt, cdAndGD),
		presence(FlagNoFixSubRtoW, cdAndGD),
		presence(FlagNoFixSubQSecuROM, cdAndGD),
		ints(FlagNoSkipSS, 0, 1, []params.Command{CommandXbox}),
		ints(FlagPadSector, 0, 1, cdAndGD, []params.Command{CommandDVD, CommandBluRay}),
		ints(FlagRange, 2, 2, []params.Command{CommandDVD}),
		presence(FlagRaw, []params.Command{CommandDVD}),
		presence(FlagResume, []params.Command{CommandDVD}),
		presence(FlagReverse, cdAndGD),
		ints(FlagRetryCount, 0, 1, discCommands),
		presence(FlagScanAntiMod, allCD),
		ints(FlagScanFileProtect, 0, 1, allCD),
		presence(FlagScanSectorProtect, allCD),
		presence(FlagSeventyFour, allCD),
		ints(FlagSkipSector, 1, 2, cdCommands, []params.Command{CommandDVD}),
		ints(FlagSubchannelReadLevel, 0, 1, cdAndGD),
		presence(FlagTages, allCD),
		presence(FlagTryReadingPregap, cdCommands),
		presence(FlagUseAnchorVolumeDescPtr, []params.Command{CommandDVD, CommandBluRay}),
		ints(FlagVideoNow, 0, 1, cdCommands),
		presence(FlagVideoNowColor, cdCommands),
		presence(FlagVideoNowXP, cdCommands),
	},
	Layouts: map[params.Command][]string{
		CommandAudio:       {PosDrive, PosFilename, PosSpeed, PosStartLBA, PosEndLBA},
		CommandData:        {PosDrive, PosFilename, PosSpeed, PosStartLBA, PosEndLBA},
		CommandCompactDisc: {PosDrive, PosFilename, PosSpeed},
		CommandGDROM:       {PosDrive, PosFilename, PosSpeed},
		CommandSwap:        {PosDrive, PosFilename, PosSpeed},
		CommandDVD:         {PosDrive, PosFilename, PosSpeed},
		CommandBluRay:      {PosDrive, PosFilename},
		CommandFloppy:      {PosDrive, PosFilename},
		CommandDisk:        {PosDrive, PosFilename},
		CommandSACD:        {PosDrive, PosFilename},
		CommandXbox:        {PosDrive, PosFilename},
		CommandClose:       {PosDrive},
		CommandDriveSpeed:  {PosDrive},
		CommandEject:       {PosDrive},
		CommandList:        {PosDrive},
		CommandReset:       {PosDrive},
		CommandStart:       {PosDrive},
		CommandStop:        {PosDrive},
		CommandMDS:         {PosFilename},
		CommandSub:         {PosFilename},
		CommandMerge:       {PosFilename, PosMergeFile},
	},
}

// Grammar returns the DiscImageCreator command-line grammar.
func Grammar() *params.Grammar {
	return grammar
}
