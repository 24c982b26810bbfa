package target

import "strings"

// Region is a normalized release region.
type Region string

const (
	RegionWorld   Region = "World"
	RegionGermany Region = "Germany"
	RegionUSA     Region = "USA"
	RegionFrance  Region = "France"
	RegionItaly   Region = "Italy"
	RegionJapan   Region = "Japan"
	RegionKorea   Region = "Korea"
	RegionEurope  Region = "Europe"
	RegionRussia  Region = "Russia"
	RegionSpain   Region = "Spain"
)

// NintendoRegion decodes the region character of a Nintendo disc serial (the
// fourth character, e.g. the E in "GALE01"). 'X' is used on discs with no
// real region and decodes to absent, as does any unknown code.
func NintendoRegion(code byte) (Region, bool) {
	switch code {
	case 'A':
		return RegionWorld, true
	case 'D':
		return RegionGermany, true
	case 'E':
		return RegionUSA, true
	case 'F':
		return RegionFrance, true
	case 'I':
		return RegionItaly, true
	case 'J':
		return RegionJapan, true
	case 'K':
		return RegionKorea, true
	case 'L', 'M', 'P':
		return RegionEurope, true
	case 'R':
		return RegionRussia, true
	case 'S':
		return RegionSpain, true
	case 'X':
		return "", false
	default:
		return "", false
	}
}

// NintendoSerialRegion decodes the region of a full Nintendo serial.
func NintendoSerialRegion(serial string) (Region, bool) {
	if len(serial) < 4 {
		return "", false
	}
	return NintendoRegion(serial[3])
}

var regionNames = []Region{
	RegionWorld, RegionGermany, RegionUSA, RegionFrance, RegionItaly,
	RegionJapan, RegionKorea, RegionEurope, RegionRussia, RegionSpain,
}

// ParseRegion matches a region name as printed in engine logs, ignoring
// case.
func ParseRegion(name string) (Region, bool) {
	name = strings.TrimSpace(name)
	for _, r := range regionNames {
		if strings.EqualFold(string(r), name) {
			return r, true
		}
	}
	return "", false
}
