package target_test

import (
	"testing"

	"dumpdriver/internal/target"
)

func TestNintendoRegionTable(t *testing.T) {
	cases := []struct {
		code byte
		want target.Region
		ok   bool
	}{
		{'A', target.RegionWorld, true},
		{'D', target.RegionGermany, true},
		{'E', target.RegionUSA, true},
		{'F', target.RegionFrance, true},
		{'I', target.RegionItaly, true},
		{'J', target.RegionJapan, true},
		{'K', target.RegionKorea, true},
		{'L', target.RegionEurope, true},
		{'M', target.RegionEurope, true},
		{'P', target.RegionEurope, true},
		{'R', target.RegionRussia, true},
		{'S', target.RegionSpain, true},
		{'X', "", false},
		{'Z', "", false},
		{'e', "", false},
	}
	for _, tc := range cases {
		got, ok := target.NintendoRegion(tc.code)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("NintendoRegion(%q) = (%q, %v), want (%q, %v)", tc.code, got, ok, tc.want, tc.ok)
		}
	}
}

func TestNintendoSerialRegion(t *testing.T) {
	if got, ok := target.NintendoSerialRegion("GALE01"); !ok || got != target.RegionUSA {
		t.Fatalf("unexpected region for GALE01: %q %v", got, ok)
	}
	if _, ok := target.NintendoSerialRegion("GAL"); ok {
		t.Fatal("expected short serial to decode to absent")
	}
	if _, ok := target.NintendoSerialRegion("RVLX"); ok {
		t.Fatal("expected X region to decode to absent")
	}
}

func TestParseSystemAcceptsIDAndDisplayName(t *testing.T) {
	got, err := target.ParseSystem("Sony PlayStation 2")
	if err != nil {
		t.Fatalf("ParseSystem returned error: %v", err)
	}
	if got != target.SystemSonyPlayStation2 {
		t.Fatalf("unexpected system: %q", got)
	}
	got, err = target.ParseSystem(" NINTENDO_GAMECUBE ")
	if err != nil || got != target.SystemNintendoGameCube {
		t.Fatalf("unexpected parse result: %q %v", got, err)
	}
	if _, err := target.ParseSystem("sega_32x"); err == nil {
		t.Fatal("expected unknown system error")
	}
	if _, err := target.ParseSystem(""); err == nil {
		t.Fatal("expected empty system error")
	}
}

func TestParseMediaType(t *testing.T) {
	got, err := target.ParseMediaType("cd-rom")
	if err != nil || got != target.MediaCDROM {
		t.Fatalf("unexpected parse result: %q %v", got, err)
	}
	if _, err := target.ParseMediaType("betamax"); err == nil {
		t.Fatal("expected unknown media error")
	}
	if !target.MediaGDROM.Optical() || target.MediaFloppy.Optical() {
		t.Fatal("unexpected optical classification")
	}
}

func TestEverySystemShipsOnKnownMedia(t *testing.T) {
	systems := target.Systems()
	if len(systems) < 50 {
		t.Fatalf("expected a populated system table, got %d", len(systems))
	}
	for _, system := range systems {
		media := system.MediaTypes()
		if len(media) == 0 {
			t.Fatalf("system %s declares no media", system)
		}
		for _, m := range media {
			if !m.Known() {
				t.Fatalf("system %s declares unknown media %q", system, m)
			}
			if !system.Supports(m) {
				t.Fatalf("system %s does not report support for %s", system, m)
			}
		}
	}
}

func TestOptionsAccessors(t *testing.T) {
	opts := target.Options{
		"dic.quiet":           "true",
		"dic.reread_count":    "15",
		"dic.bad_int":         "x",
		"redumper.drive_type": " PLEXTOR ",
	}
	if !opts.Bool("dic.quiet") {
		t.Fatal("expected quiet enabled")
	}
	if opts.Bool("dic.paranoid") {
		t.Fatal("expected absent bool to be false")
	}
	if got := opts.Int("dic.reread_count", 20); got != 15 {
		t.Fatalf("unexpected reread count %d", got)
	}
	if got := opts.Int("dic.bad_int", 20); got != 20 {
		t.Fatalf("expected fallback for invalid int, got %d", got)
	}
	if got := opts.String("redumper.drive_type"); got != "PLEXTOR" {
		t.Fatalf("unexpected drive type %q", got)
	}
}

func TestSpecHasSpeed(t *testing.T) {
	for _, speed := range []int{0, -4} {
		if (target.Spec{Speed: speed}).HasSpeed() {
			t.Fatalf("expected speed %d to be absent", speed)
		}
	}
	if !(target.Spec{Speed: 8}).HasSpeed() {
		t.Fatal("expected positive speed to be present")
	}
	if (target.Spec{}).Option() == nil {
		t.Fatal("expected non-nil option bag")
	}
}

func TestParseRegion(t *testing.T) {
	if got, ok := target.ParseRegion(" europe "); !ok || got != target.RegionEurope {
		t.Fatalf("unexpected region %q %v", got, ok)
	}
	if _, ok := target.ParseRegion("Atlantis"); ok {
		t.Fatal("expected unknown region to be absent")
	}
}
