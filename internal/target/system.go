package target

import (
	"fmt"
	"sort"
	"strings"
)

// System identifies a known platform.
type System string

// Category groups systems by the kind of hardware they describe.
type Category string

const (
	CategoryConsole  Category = "console"
	CategoryComputer Category = "computer"
	CategoryArcade   Category = "arcade"
	CategoryVideo    Category = "video"
	CategoryAudio    Category = "audio"
	CategoryOther    Category = "other"
)

const (
	// Consoles
	SystemAtariJaguarCD       System = "atari_jaguar_cd"
	SystemBandaiPippin        System = "bandai_pippin"
	SystemBandaiPlaydiaQIS    System = "bandai_playdia"
	SystemCommodoreCDTV       System = "commodore_cdtv"
	SystemCommodoreCD32       System = "commodore_cd32"
	SystemFujitsuFMTownsMarty System = "fujitsu_fm_towns_marty"
	SystemHasbroVideoNow      System = "hasbro_videonow"
	SystemMattelHyperScan     System = "mattel_hyperscan"
	SystemMicrosoftXbox       System = "microsoft_xbox"
	SystemMicrosoftXbox360    System = "microsoft_xbox360"
	SystemMicrosoftXboxOne    System = "microsoft_xbox_one"
	SystemMicrosoftXboxSeries System = "microsoft_xbox_series"
	SystemNECPCEngineCD       System = "nec_pc_engine_cd"
	SystemNECPCFX             System = "nec_pc_fx"
	SystemNintendoGameCube    System = "nintendo_gamecube"
	SystemNintendoWii         System = "nintendo_wii"
	SystemNintendoWiiU        System = "nintendo_wiiu"
	SystemNintendo64DD        System = "nintendo_64dd"
	SystemNintendoFamicomDisk System = "nintendo_famicom_disk"
	SystemPanasonic3DO        System = "panasonic_3do"
	SystemPanasonicM2         System = "panasonic_m2"
	SystemPhilipsCDi          System = "philips_cdi"
	SystemSegaCD              System = "sega_cd"
	SystemSegaDreamcast       System = "sega_dreamcast"
	SystemSegaSaturn          System = "sega_saturn"
	SystemSNKNeoGeoCD         System = "snk_neogeo_cd"
	SystemSonyPlayStation     System = "sony_playstation"
	SystemSonyPlayStation2    System = "sony_playstation2"
	SystemSonyPlayStation3    System = "sony_playstation3"
	SystemSonyPlayStation4    System = "sony_playstation4"
	SystemSonyPlayStation5    System = "sony_playstation5"
	SystemSonyPSP             System = "sony_psp"
	SystemVTechVFlash         System = "vtech_vflash"
	SystemMemorexVIS          System = "memorex_vis"
	SystemTandyMemorexVIS     System = "tandy_vis"
	SystemPioneerLaserActive  System = "pioneer_laseractive"
	SystemTaoiKTV             System = "tao_ikiki"
	SystemWorldeVideoNow      System = "worlde_videonow_color"

	// Computers
	SystemAcornArchimedes  System = "acorn_archimedes"
	SystemAppleMacintosh   System = "apple_macintosh"
	SystemCommodoreAmigaCD System = "commodore_amiga_cd"
	SystemFujitsuFMTowns   System = "fujitsu_fm_towns"
	SystemIBMPCCompatible  System = "ibm_pc_compatible"
	SystemNECPC88          System = "nec_pc88"
	SystemNECPC98          System = "nec_pc98"
	SystemSharpX68000      System = "sharp_x68000"

	// Arcade
	SystemKonamiFireBeat            System = "konami_firebeat"
	SystemKonamiM2                  System = "konami_m2"
	SystemKonamiPython2             System = "konami_python2"
	SystemKonamiSystem573           System = "konami_system573"
	SystemNamcoSystem246            System = "namco_system246"
	SystemNamcoSegaNintendoTriforce System = "namco_sega_nintendo_triforce"
	SystemSegaChihiro               System = "sega_chihiro"
	SystemSegaLindbergh             System = "sega_lindbergh"
	SystemSegaNaomi                 System = "sega_naomi"
	SystemSegaNaomi2                System = "sega_naomi2"
	SystemSegaRingEdge              System = "sega_ringedge"
	SystemSegaTitanVideo            System = "sega_titan_video"
	SystemTABAustriaQuizard         System = "tab_austria_quizard"

	// Video and audio
	SystemAudioCD                     System = "audio_cd"
	SystemBDVideo                     System = "bd_video"
	SystemDVDAudio                    System = "dvd_audio"
	SystemDVDVideo                    System = "dvd_video"
	SystemEnhancedCD                  System = "enhanced_cd"
	SystemHDDVDVideo                  System = "hddvd_video"
	SystemLaserDiscVideo              System = "laserdisc_video"
	SystemPhotoCD                     System = "photo_cd"
	SystemPlayStationGameSharkUpdates System = "playstation_gameshark_updates"
	SystemSuperAudioCD                System = "super_audio_cd"
	SystemVideoCD                     System = "video_cd"
)

type systemInfo struct {
	name     string
	category Category
	media    []MediaType
}

var systemTable = map[System]systemInfo{
	SystemAtariJaguarCD:       {"Atari Jaguar CD Interactive Multimedia System", CategoryConsole, []MediaType{MediaCDROM}},
	SystemBandaiPippin:        {"Bandai Pippin", CategoryConsole, []MediaType{MediaCDROM}},
	SystemBandaiPlaydiaQIS:    {"Bandai Playdia Quick Interactive System", CategoryConsole, []MediaType{MediaCDROM}},
	SystemCommodoreCDTV:       {"Commodore CDTV", CategoryConsole, []MediaType{MediaCDROM}},
	SystemCommodoreCD32:       {"Commodore Amiga CD32", CategoryConsole, []MediaType{MediaCDROM}},
	SystemFujitsuFMTownsMarty: {"Fujitsu FM Towns Marty", CategoryConsole, []MediaType{MediaCDROM, MediaFloppy}},
	SystemHasbroVideoNow:      {"Hasbro VideoNow", CategoryConsole, []MediaType{MediaCDROM}},
	SystemMattelHyperScan:     {"Mattel HyperScan", CategoryConsole, []MediaType{MediaCDROM}},
	SystemMicrosoftXbox:       {"Microsoft Xbox", CategoryConsole, []MediaType{MediaCDROM, MediaDVD}},
	SystemMicrosoftXbox360:    {"Microsoft Xbox 360", CategoryConsole, []MediaType{MediaCDROM, MediaDVD, MediaHDDVD}},
	SystemMicrosoftXboxOne:    {"Microsoft Xbox One", CategoryConsole, []MediaType{MediaBluRay}},
	SystemMicrosoftXboxSeries: {"Microsoft Xbox Series X and S", CategoryConsole, []MediaType{MediaBluRay}},
	SystemNECPCEngineCD:       {"NEC PC Engine CD & TurboGrafx CD", CategoryConsole, []MediaType{MediaCDROM}},
	SystemNECPCFX:             {"NEC PC-FX & PC-FXGA", CategoryConsole, []MediaType{MediaCDROM}},
	SystemNintendoGameCube:    {"Nintendo GameCube", CategoryConsole, []MediaType{MediaGameCube}},
	SystemNintendoWii:         {"Nintendo Wii", CategoryConsole, []MediaType{MediaWii, MediaDVD}},
	SystemNintendoWiiU:        {"Nintendo Wii U", CategoryConsole, []MediaType{MediaWiiU}},
	SystemNintendo64DD:        {"Nintendo 64DD", CategoryConsole, []MediaType{MediaNintendoDD}},
	SystemNintendoFamicomDisk: {"Nintendo Famicom Disk System", CategoryConsole, []MediaType{MediaFamicomDisk}},
	SystemPanasonic3DO:        {"Panasonic 3DO Interactive Multiplayer", CategoryConsole, []MediaType{MediaCDROM}},
	SystemPanasonicM2:         {"Panasonic M2", CategoryConsole, []MediaType{MediaCDROM}},
	SystemPhilipsCDi:          {"Philips CD-i", CategoryConsole, []MediaType{MediaCDROM}},
	SystemSegaCD:              {"Sega CD & Mega CD", CategoryConsole, []MediaType{MediaCDROM}},
	SystemSegaDreamcast:       {"Sega Dreamcast", CategoryConsole, []MediaType{MediaCDROM, MediaGDROM}},
	SystemSegaSaturn:          {"Sega Saturn", CategoryConsole, []MediaType{MediaCDROM}},
	SystemSNKNeoGeoCD:         {"SNK Neo Geo CD", CategoryConsole, []MediaType{MediaCDROM}},
	SystemSonyPlayStation:     {"Sony PlayStation", CategoryConsole, []MediaType{MediaCDROM}},
	SystemSonyPlayStation2:    {"Sony PlayStation 2", CategoryConsole, []MediaType{MediaCDROM, MediaDVD}},
	SystemSonyPlayStation3:    {"Sony PlayStation 3", CategoryConsole, []MediaType{MediaBluRay, MediaDVD, MediaCDROM}},
	SystemSonyPlayStation4:    {"Sony PlayStation 4", CategoryConsole, []MediaType{MediaBluRay}},
	SystemSonyPlayStation5:    {"Sony PlayStation 5", CategoryConsole, []MediaType{MediaBluRay}},
	SystemSonyPSP:             {"Sony PlayStation Portable", CategoryConsole, []MediaType{MediaUMD, MediaCDROM, MediaDVD}},
	SystemVTechVFlash:         {"VTech V.Flash & V.Smile Pro", CategoryConsole, []MediaType{MediaCDROM}},
	SystemMemorexVIS:          {"Memorex Visual Information System", CategoryConsole, []MediaType{MediaCDROM}},
	SystemTandyMemorexVIS:     {"Tandy / Memorex Visual Information System", CategoryConsole, []MediaType{MediaCDROM}},
	SystemPioneerLaserActive:  {"Pioneer LaserActive", CategoryConsole, []MediaType{MediaCDROM, MediaLaserDisc}},
	SystemTaoiKTV:             {"Tao iKTV", CategoryConsole, []MediaType{MediaCDROM}},
	SystemWorldeVideoNow:      {"Hasbro VideoNow Color", CategoryConsole, []MediaType{MediaCDROM}},

	SystemAcornArchimedes:  {"Acorn Archimedes", CategoryComputer, []MediaType{MediaCDROM, MediaFloppy}},
	SystemAppleMacintosh:   {"Apple Macintosh", CategoryComputer, []MediaType{MediaCDROM, MediaDVD, MediaFloppy, MediaHardDisk}},
	SystemCommodoreAmigaCD: {"Commodore Amiga CD", CategoryComputer, []MediaType{MediaCDROM, MediaFloppy}},
	SystemFujitsuFMTowns:   {"Fujitsu FM Towns series", CategoryComputer, []MediaType{MediaCDROM, MediaFloppy}},
	SystemIBMPCCompatible:  {"IBM PC compatible", CategoryComputer, []MediaType{MediaCDROM, MediaDVD, MediaBluRay, MediaFloppy, MediaHardDisk}},
	SystemNECPC88:          {"NEC PC-88 series", CategoryComputer, []MediaType{MediaCDROM, MediaFloppy}},
	SystemNECPC98:          {"NEC PC-98 series", CategoryComputer, []MediaType{MediaCDROM, MediaDVD, MediaFloppy}},
	SystemSharpX68000:      {"Sharp X68000", CategoryComputer, []MediaType{MediaCDROM, MediaFloppy}},

	SystemKonamiFireBeat:            {"Konami Firebeat", CategoryArcade, []MediaType{MediaCDROM, MediaDVD}},
	SystemKonamiM2:                  {"Konami M2", CategoryArcade, []MediaType{MediaCDROM}},
	SystemKonamiPython2:             {"Konami Python 2", CategoryArcade, []MediaType{MediaDVD}},
	SystemKonamiSystem573:           {"Konami System 573", CategoryArcade, []MediaType{MediaCDROM}},
	SystemNamcoSystem246:            {"Namco System 246", CategoryArcade, []MediaType{MediaCDROM, MediaDVD}},
	SystemNamcoSegaNintendoTriforce: {"Namco / Sega / Nintendo Triforce", CategoryArcade, []MediaType{MediaGDROM}},
	SystemSegaChihiro:               {"Sega Chihiro", CategoryArcade, []MediaType{MediaGDROM}},
	SystemSegaLindbergh:             {"Sega Lindbergh", CategoryArcade, []MediaType{MediaDVD}},
	SystemSegaNaomi:                 {"Sega Naomi", CategoryArcade, []MediaType{MediaGDROM}},
	SystemSegaNaomi2:                {"Sega Naomi 2", CategoryArcade, []MediaType{MediaGDROM}},
	SystemSegaRingEdge:              {"Sega RingEdge", CategoryArcade, []MediaType{MediaDVD}},
	SystemSegaTitanVideo:            {"Sega Titan Video", CategoryArcade, []MediaType{MediaCDROM}},
	SystemTABAustriaQuizard:         {"TAB-Austria Quizard", CategoryArcade, []MediaType{MediaCDROM}},

	SystemAudioCD:                     {"Audio CD", CategoryAudio, []MediaType{MediaCDROM}},
	SystemBDVideo:                     {"BD-Video", CategoryVideo, []MediaType{MediaBluRay}},
	SystemDVDAudio:                    {"DVD-Audio", CategoryAudio, []MediaType{MediaDVD, MediaDVDAudio}},
	SystemDVDVideo:                    {"DVD-Video", CategoryVideo, []MediaType{MediaDVD}},
	SystemEnhancedCD:                  {"Enhanced CD", CategoryAudio, []MediaType{MediaCDROM}},
	SystemHDDVDVideo:                  {"HD DVD-Video", CategoryVideo, []MediaType{MediaHDDVD}},
	SystemLaserDiscVideo:              {"LaserDisc", CategoryVideo, []MediaType{MediaLaserDisc}},
	SystemPhotoCD:                     {"Photo CD", CategoryOther, []MediaType{MediaCDROM}},
	SystemPlayStationGameSharkUpdates: {"PlayStation GameShark Updates", CategoryOther, []MediaType{MediaCDROM}},
	SystemSuperAudioCD:                {"Super Audio CD", CategoryAudio, []MediaType{MediaSuperAudioCD}},
	SystemVideoCD:                     {"Video CD", CategoryVideo, []MediaType{MediaCDROM, MediaVideoCD}},
}

// Name returns the display name of the system.
func (s System) Name() string {
	if info, ok := systemTable[s]; ok {
		return info.name
	}
	return string(s)
}

// Known reports whether the system belongs to the closed set.
func (s System) Known() bool {
	_, ok := systemTable[s]
	return ok
}

// Category returns the hardware category of the system.
func (s System) Category() Category {
	if info, ok := systemTable[s]; ok {
		return info.category
	}
	return CategoryOther
}

// MediaTypes returns the media types the system ships on, most common first.
func (s System) MediaTypes() []MediaType {
	info, ok := systemTable[s]
	if !ok {
		return nil
	}
	out := make([]MediaType, len(info.media))
	copy(out, info.media)
	return out
}

// Supports reports whether the system ships on the given media type.
func (s System) Supports(media MediaType) bool {
	for _, m := range systemTable[s].media {
		if m == media {
			return true
		}
	}
	return false
}

// Systems returns every known system sorted by identifier.
func Systems() []System {
	out := make([]System, 0, len(systemTable))
	for id := range systemTable {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ParseSystem resolves an identifier or display name, ignoring case.
func ParseSystem(value string) (System, error) {
	needle := strings.ToLower(strings.TrimSpace(value))
	if needle == "" {
		return "", fmt.Errorf("system required")
	}
	if _, ok := systemTable[System(needle)]; ok {
		return System(needle), nil
	}
	for id, info := range systemTable {
		if strings.ToLower(info.name) == needle {
			return id, nil
		}
	}
	return "", fmt.Errorf("unknown system %q", value)
}
