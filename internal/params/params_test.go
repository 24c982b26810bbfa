package params_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"dumpdriver/internal/params"
)

const (
	cmdRead params.Command = "read"
	cmdStop params.Command = "stop"
)

func slashGrammar() *params.Grammar {
	readOnly := []params.Command{cmdRead}
	return &params.Grammar{
		Commands: []params.Command{cmdRead, cmdStop},
		Flags: []params.Flag{
			{Name: "drive", Kind: params.KindString, Style: params.StylePositional},
			{Name: "path", Kind: params.KindString, Style: params.StylePositional},
			{Name: "speed", Kind: params.KindInt, Style: params.StylePositional},
			{Name: "/q", Kind: params.KindPresence, Commands: []params.Command{cmdRead, cmdStop}},
			{Name: "/c2", Kind: params.KindInt, MinValues: 0, MaxValues: 2, Commands: readOnly},
			{Name: "/ra", Kind: params.KindInt, MinValues: 2, MaxValues: 2, Commands: readOnly},
			{Name: "/be", Kind: params.KindString, Choices: []string{"raw", "pack"}, Commands: readOnly},
			{Name: "/label", Kind: params.KindString, MinValues: 1, Commands: readOnly},
		},
		Layouts: map[params.Command][]string{
			cmdRead: {"drive", "path", "speed"},
			cmdStop: {"drive"},
		},
	}
}

func equalsGrammar() *params.Grammar {
	cmds := []params.Command{params.Implicit, "disc", "eject"}
	return &params.Grammar{
		Commands:        []params.Command{"disc", "eject"},
		ImplicitAllowed: true,
		Flags: []params.Flag{
			{Name: "--verbose", Kind: params.KindPresence, Style: params.StyleEquals, Commands: cmds},
			{Name: "--drive", Kind: params.KindString, Style: params.StyleEquals, Commands: cmds},
			{Name: "--drive-type", Kind: params.KindString, Style: params.StyleEquals, Commands: cmds[:2]},
			{Name: "--speed", Kind: params.KindInt, Style: params.StyleEquals, Commands: cmds[:2]},
		},
	}
}

func TestGrammarsAreConsistent(t *testing.T) {
	for name, g := range map[string]*params.Grammar{"slash": slashGrammar(), "equals": equalsGrammar()} {
		if err := g.Validate(); err != nil {
			t.Fatalf("%s grammar invalid: %v", name, err)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	cases := []struct {
		name    string
		grammar *params.Grammar
		line    string
	}{
		{"positionals only", slashGrammar(), "read F test.bin 8"},
		{"optional ints", slashGrammar(), "read F test.bin 8 /c2 20"},
		{"two optional ints", slashGrammar(), "read F test.bin 8 /c2 20 4 /q"},
		{"bare optional int", slashGrammar(), "read F test.bin 8 /c2 /q"},
		{"fixed ints", slashGrammar(), "read F test.bin 8 /ra 0 -100"},
		{"choice present", slashGrammar(), "read F test.bin 8 /be raw /q"},
		{"choice absent", slashGrammar(), "read F test.bin 8 /be /q"},
		{"quoted path", slashGrammar(), `read F "my dump.bin" 4`},
		{"quoted without space", slashGrammar(), `read F "dump.bin" 4`},
		{"quoted string flag", slashGrammar(), `read F a.bin 4 /label "two words"`},
		{"flag order preserved", slashGrammar(), "read F a.bin 4 /q /c2 3"},
		{"stop", slashGrammar(), "stop F /q"},
		{"implicit", equalsGrammar(), "--drive=/dev/sr0 --speed=8"},
		{"explicit mode", equalsGrammar(), "disc --verbose --drive=/dev/sr0 --drive-type=PLEXTOR"},
		{"quoted equals", equalsGrammar(), `--drive="/dev/disk by-id/x"`},
		{"empty implicit", equalsGrammar(), ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			set, err := params.Parse(tc.grammar, tc.line)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tc.line, err)
			}
			got, err := params.Generate(set)
			if err != nil {
				t.Fatalf("Generate returned error: %v", err)
			}
			if got != tc.line {
				t.Fatalf("round trip mismatch: got %q want %q", got, tc.line)
			}
		})
	}
}

func TestParseRejectsMalformedInput(t *testing.T) {
	cases := []struct {
		name    string
		grammar *params.Grammar
		line    string
	}{
		{"unknown command", slashGrammar(), "write F a.bin 4"},
		{"missing command", slashGrammar(), ""},
		{"missing positional", slashGrammar(), "read F a.bin"},
		{"non-canonical speed", slashGrammar(), "read F a.bin 08"},
		{"unknown flag", slashGrammar(), "read F a.bin 4 /zz"},
		{"duplicate flag", slashGrammar(), "read F a.bin 4 /q /q"},
		{"illegal flag", slashGrammar(), "stop F /c2 20"},
		{"short fixed ints", slashGrammar(), "read F a.bin 4 /ra 1"},
		{"missing string value", slashGrammar(), "read F a.bin 4 /label"},
		{"unterminated quote", slashGrammar(), `read F "a.bin 4`},
		{"stray quote", slashGrammar(), `read F a"b 4`},
		{"illegal for mode", equalsGrammar(), "eject --speed=8"},
		{"empty equals value", equalsGrammar(), "--drive="},
		{"non-canonical equals int", equalsGrammar(), "--speed=+8"},
		{"trailing content", equalsGrammar(), "--drive=x extra"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			set, err := params.Parse(tc.grammar, tc.line)
			if err == nil {
				t.Fatalf("expected parse failure, got set with command %q", set.Command())
			}
			if !errors.Is(err, params.ErrParse) {
				t.Fatalf("expected ErrParse, got %v", err)
			}
		})
	}
}

func TestParseIllegalFlagCarriesMarker(t *testing.T) {
	_, err := params.Parse(slashGrammar(), "stop F /c2")
	if !errors.Is(err, params.ErrIllegalFlag) {
		t.Fatalf("expected ErrIllegalFlag, got %v", err)
	}
}

func TestParseKeepsTrailingWhenAllowed(t *testing.T) {
	g := equalsGrammar()
	g.AllowTrailing = true
	set, err := params.Parse(g, "--drive=x some/path here")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if set.Trailing != "some/path here" {
		t.Fatalf("unexpected trailing %q", set.Trailing)
	}
	got, err := params.Generate(set)
	if err != nil || got != "--drive=x some/path here" {
		t.Fatalf("unexpected generate result %q %v", got, err)
	}
}

func TestParsedSetExposesValues(t *testing.T) {
	set, err := params.Parse(slashGrammar(), "read F test.bin 8 /c2 20")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if set.Command() != cmdRead {
		t.Fatalf("unexpected command %q", set.Command())
	}
	if drive, ok := set.Text("drive"); !ok || drive != "F" {
		t.Fatalf("unexpected drive %q", drive)
	}
	if speed, ok := set.Int("speed"); !ok || speed != 8 {
		t.Fatalf("unexpected speed %d", speed)
	}
	value, ok := set.Value("/c2")
	if !ok {
		t.Fatal("expected /c2 enabled")
	}
	if diff := cmp.Diff([]int64{20}, value.Ints); diff != "" {
		t.Fatalf("unexpected /c2 values (-want +got):\n%s", diff)
	}
	if set.State("/q") != params.Unset {
		t.Fatalf("expected /q unset, got %s", set.State("/q"))
	}
}

func TestSetEnforcesLegality(t *testing.T) {
	set, err := params.NewSet(slashGrammar(), cmdStop)
	if err != nil {
		t.Fatalf("NewSet returned error: %v", err)
	}
	if err := set.Enable("/c2", params.IntValue(20)); !errors.Is(err, params.ErrIllegalFlag) {
		t.Fatalf("expected ErrIllegalFlag, got %v", err)
	}
	if set.State("/c2") != params.Unset {
		t.Fatal("illegal enable must not change state")
	}
	if err := set.Enable("path", params.StringValue("x")); !errors.Is(err, params.ErrIllegalFlag) {
		t.Fatalf("expected positional outside layout to be illegal, got %v", err)
	}
	if err := set.Enable("/nope", params.Value{}); !errors.Is(err, params.ErrUnknownFlag) {
		t.Fatalf("expected ErrUnknownFlag, got %v", err)
	}
	if _, err := params.NewSet(slashGrammar(), "write"); !errors.Is(err, params.ErrUnknownCommand) {
		t.Fatalf("expected ErrUnknownCommand, got %v", err)
	}
}

func TestGenerateEmissionOrderAndToggles(t *testing.T) {
	set, err := params.NewSet(slashGrammar(), cmdRead)
	if err != nil {
		t.Fatalf("NewSet returned error: %v", err)
	}
	mustEnable(t, set, "drive", params.StringValue("F"))
	mustEnable(t, set, "path", params.StringValue(`C:\dumps\my game.bin`))
	mustEnable(t, set, "speed", params.IntValue(8))
	mustEnable(t, set, "/q", params.Value{})
	mustEnable(t, set, "/c2", params.IntValue(20))
	mustEnable(t, set, "/be", params.StringValue("raw"))

	if err := set.Disable("/q"); err != nil {
		t.Fatalf("Disable returned error: %v", err)
	}
	if set.State("/q") != params.Off {
		t.Fatalf("expected /q off, got %s", set.State("/q"))
	}
	mustEnable(t, set, "/c2", params.IntValue(10))

	got, err := params.Generate(set)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	want := `read F "C:\dumps\my game.bin" 8 /c2 10 /be raw`
	if got != want {
		t.Fatalf("unexpected command: got %q want %q", got, want)
	}
	if diff := cmp.Diff([]string{"/c2", "/be"}, set.Active()); diff != "" {
		t.Fatalf("unexpected active flags (-want +got):\n%s", diff)
	}
}

func TestGenerateReportsUnbuildable(t *testing.T) {
	set, err := params.NewSet(slashGrammar(), cmdRead)
	if err != nil {
		t.Fatalf("NewSet returned error: %v", err)
	}
	mustEnable(t, set, "drive", params.StringValue("F"))
	mustEnable(t, set, "path", params.StringValue("a.bin"))
	if _, err := params.Generate(set); !errors.Is(err, params.ErrUnbuildable) {
		t.Fatalf("expected ErrUnbuildable for missing speed, got %v", err)
	}

	mustEnable(t, set, "speed", params.IntValue(4))
	mustEnable(t, set, "/label", params.Value{})
	if _, err := params.Generate(set); !errors.Is(err, params.ErrUnbuildable) {
		t.Fatalf("expected ErrUnbuildable for empty label, got %v", err)
	}
	if err := set.Clear("/label"); err != nil {
		t.Fatalf("Clear returned error: %v", err)
	}
	mustEnable(t, set, "/ra", params.IntValue(1))
	if _, err := params.Generate(set); !errors.Is(err, params.ErrUnbuildable) {
		t.Fatalf("expected ErrUnbuildable for short /ra, got %v", err)
	}
}

func TestSupportListsLegalFlags(t *testing.T) {
	support := slashGrammar().Support()
	want := map[params.Command][]string{
		cmdRead: {"/q", "/c2", "/ra", "/be", "/label"},
		cmdStop: {"/q"},
	}
	if diff := cmp.Diff(want, support); diff != "" {
		t.Fatalf("unexpected support table (-want +got):\n%s", diff)
	}
}

func TestTokenize(t *testing.T) {
	got, err := params.Tokenize(`cd  F "a b.bin" 8`)
	if err != nil {
		t.Fatalf("Tokenize returned error: %v", err)
	}
	want := []string{"cd", "F", `"a b.bin"`, "8"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected tokens (-want +got):\n%s", diff)
	}
}

func TestFlagParseLeavesPositionOnMismatch(t *testing.T) {
	flag := params.Flag{Name: "/ra", Kind: params.KindInt, MinValues: 2, MaxValues: 2}
	_, next, ok := flag.Parse([]string{"/ra", "1", "/q"}, 0)
	if ok || next != 0 {
		t.Fatalf("expected no match at position 0, got ok=%v next=%d", ok, next)
	}
	value, next, ok := flag.Parse([]string{"x", "/ra", "1", "2"}, 1)
	if !ok || next != 4 {
		t.Fatalf("expected match consuming three tokens, got ok=%v next=%d", ok, next)
	}
	if diff := cmp.Diff([]string{"/ra", "1", "2"}, flag.Format(value)); diff != "" {
		t.Fatalf("unexpected format (-want +got):\n%s", diff)
	}
}

func mustEnable(t *testing.T, set *params.Set, name string, value params.Value) {
	t.Helper()
	if err := set.Enable(name, value); err != nil {
		t.Fatalf("Enable(%s) returned error: %v", name, err)
	}
}

func TestEnableRejectsValueOutsideChoices(t *testing.T) {
	set, err := params.NewSet(slashGrammar(), cmdRead)
	if err != nil {
		t.Fatalf("NewSet returned error: %v", err)
	}
	if err := set.Enable("/be", params.StringValue("cooked")); !errors.Is(err, params.ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue, got %v", err)
	}
	if err := set.Enable("/be", params.StringValue("pack")); err != nil {
		t.Fatalf("expected declared choice to be accepted, got %v", err)
	}
}
