package main

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"dumpdriver/internal/services"
)

func TestGenerateRedumperCommandLine(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{
		"generate", "-e", "redumper", "-s", "ibm_pc_compatible", "-m", "cdrom", "-o", "out/track",
	}, env.configPath)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	line := strings.TrimSpace(out)
	if !strings.HasPrefix(line, "redumper disc --drive=/dev/sr0") {
		t.Fatalf("unexpected command line %q", line)
	}
	requireContains(t, line, "--retries=20 --image-path=out --image-name=track")
	if strings.Contains(line, "--speed") {
		t.Fatalf("expected speed omitted, got %q", line)
	}
}

func TestGenerateDICRequiresSpeed(t *testing.T) {
	env := setupCLITestEnv(t)
	output := filepath.Join(env.baseDir, "game.bin")

	_, _, err := runCLI(t, []string{
		"generate", "-e", "dic", "-s", "sony_playstation", "-m", "cdrom", "-o", output,
	}, env.configPath)
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error without speed, got %v", err)
	}

	out, _, err := runCLI(t, []string{
		"generate", "-e", "dic", "-s", "sony_playstation", "-m", "cdrom", "-o", output, "--speed", "8",
	}, env.configPath)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	requireContains(t, out, "DiscImageCreator cd /dev/sr0 ")
	requireContains(t, out, " 8 /c2 20 /nl /am /q")
}

func TestGenerateJSONUsesNameUnderOutputDir(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{
		"--json", "generate", "-e", "redumper", "-s", "sony_playstation", "-m", "cdrom",
		"-n", "Final Fantasy VII", "-d", "/dev/sr1", "--speed", "4",
	}, env.configPath)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	var view invocationView
	if err := json.Unmarshal([]byte(out), &view); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	// redumper takes the image name without its extension.
	wantOutput := filepath.Join(env.cfg.Paths.OutputDir, "Final Fantasy VII", "Final Fantasy VII")
	if view.Output != wantOutput {
		t.Fatalf("output = %q, want %q", view.Output, wantOutput)
	}
	if view.Input != "/dev/sr1" || view.Speed == nil || *view.Speed != 4 || !view.Dumping {
		t.Fatalf("unexpected view %+v", view)
	}
}

func TestGenerateRejectsUnsupportedTarget(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{
		"generate", "-e", "xbc", "-s", "sony_playstation2", "-m", "dvd", "-o", "game.iso",
	}, env.configPath)
	if !errors.Is(err, services.ErrUnsupported) {
		t.Fatalf("expected unsupported error, got %v", err)
	}
}

func TestGenerateImplicitEngineHasNoCommandLine(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{
		"generate", "-e", "cleanrip", "-s", "nintendo_wii", "-m", "nintendo_wii_disc", "-o", "game.iso",
	}, env.configPath)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	requireContains(t, out, "has no command line")
}

func TestGenerateRejectsMalformedOption(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{
		"generate", "-s", "sony_playstation", "-m", "cdrom", "-o", "game.bin", "--option", "novalue",
	}, env.configPath)
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
