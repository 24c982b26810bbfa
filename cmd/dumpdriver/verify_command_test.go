package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"dumpdriver/internal/services"
	"dumpdriver/internal/testsupport"
)

func cleanRipDump(t *testing.T, env *cliTestEnv, withBCA bool) string {
	t.Helper()
	base := filepath.Join(env.cfg.Paths.OutputDir, "RMCP01", "RMCP01")
	testsupport.WriteImage(t, base+".iso", 0x400)
	testsupport.WriteText(t, base+"-dumpinfo.txt", "--File Generated by CleanRip v2.1.0\nCRC32: 01234567\nMD5: 0123456789abcdef0123456789abcdef\n")
	if withBCA {
		testsupport.WriteOutputs(t, base, ".bca")
	}
	return base
}

func TestVerifyReportsMissingOutputs(t *testing.T) {
	env := setupCLITestEnv(t)
	base := cleanRipDump(t, env, false)

	out, _, err := runCLI(t, []string{
		"--json", "verify", "-e", "cleanrip", "-s", "nintendo_wii", "-m", "nintendo_wii_disc", base + ".iso",
	}, env.configPath)
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
	var view verifyView
	if err := json.Unmarshal([]byte(out), &view); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	want := verifyView{Engine: "cleanrip", BasePath: base, Missing: []string{base + ".bca"}}
	if diff := cmp.Diff(want, view); diff != "" {
		t.Fatalf("verify view mismatch (-want +got):\n%s", diff)
	}
}

func TestVerifyArchivesLogsAndPrechecksBundle(t *testing.T) {
	env := setupCLITestEnv(t)
	base := cleanRipDump(t, env, true)
	args := []string{"verify", "-e", "cleanrip", "-s", "nintendo_wii", "-m", "nintendo_wii_disc", base}

	out, _, err := runCLI(t, args, env.configPath)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	requireContains(t, out, "[OK] "+base)
	requireContains(t, out, base+"_logs.zip (2 added)")

	for _, suffix := range []string{"-dumpinfo.txt", ".bca"} {
		if _, err := os.Stat(base + suffix); !os.IsNotExist(err) {
			t.Fatalf("expected %s moved into bundle, stat err=%v", suffix, err)
		}
	}

	if _, _, err := runCLI(t, args, env.configPath); err != nil {
		t.Fatalf("verify with bundled logs: %v", err)
	}
	_, _, err = runCLI(t, append(args, "--no-precheck"), env.configPath)
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not found without precheck, got %v", err)
	}
}

func TestVerifyDeleteRequiresArchive(t *testing.T) {
	env := setupCLITestEnv(t)
	base := cleanRipDump(t, env, true)

	_, _, err := runCLI(t, []string{
		"verify", "-e", "cleanrip", "-s", "nintendo_wii", "-m", "nintendo_wii_disc",
		"--archive=false", "--delete-intermediates", base,
	}, env.configPath)
	if !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestArchiveCopiesBundleToDestination(t *testing.T) {
	env := setupCLITestEnv(t)
	base := cleanRipDump(t, env, true)
	dest := filepath.Join(env.baseDir, "submissions")

	out, _, err := runCLI(t, []string{
		"--json", "archive", "-e", "cleanrip", "-s", "nintendo_wii", "-m", "nintendo_wii_disc", "--keep", "--dest", dest, base,
	}, env.configPath)
	if err != nil {
		t.Fatalf("archive: %v", err)
	}
	var view archiveView
	if err := json.Unmarshal([]byte(out), &view); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if view.Bundle != base+"_logs.zip" || len(view.Added) != 2 || len(view.Removed) != 0 {
		t.Fatalf("unexpected archive view %+v", view)
	}
	if view.Copy != filepath.Join(dest, "RMCP01_logs.zip") {
		t.Fatalf("unexpected copy path %q", view.Copy)
	}
	if _, err := os.Stat(view.Copy); err != nil {
		t.Fatalf("expected bundle copy: %v", err)
	}
	if _, err := os.Stat(base + "-dumpinfo.txt"); err != nil {
		t.Fatalf("expected originals kept: %v", err)
	}
}

func TestArchiveWithoutLogsFails(t *testing.T) {
	env := setupCLITestEnv(t)
	base := filepath.Join(env.baseDir, "empty", "game")

	_, _, err := runCLI(t, []string{"archive", "-e", "cleanrip", base}, env.configPath)
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestExtractCleanRipJSON(t *testing.T) {
	env := setupCLITestEnv(t)
	base := cleanRipDump(t, env, true)

	out, _, err := runCLI(t, []string{
		"--json", "extract", "-e", "cleanrip", "-s", "nintendo_wii", "-m", "nintendo_wii_disc", "--no-hash", base,
	}, env.configPath)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	var view extractView
	if err := json.Unmarshal([]byte(out), &view); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	md := view.Metadata
	if md.DumperVersion != "v2.1.0" || md.CRC32 != "01234567" || md.MD5 != "0123456789abcdef0123456789abcdef" {
		t.Fatalf("unexpected metadata %+v", md)
	}
	if md.Size == nil || *md.Size != 0x400 {
		t.Fatalf("unexpected size %v", md.Size)
	}
	if md.Artifacts != nil {
		t.Fatalf("expected artifacts omitted without --artifacts, got %v", md.Artifacts)
	}

	out, _, err = runCLI(t, []string{
		"--yaml", "extract", "-e", "cleanrip", "-s", "nintendo_wii", "-m", "nintendo_wii_disc", "--no-hash", "--artifacts", base,
	}, env.configPath)
	if err != nil {
		t.Fatalf("extract yaml: %v", err)
	}
	requireContains(t, out, "dumper_version: v2.1.0")
	requireContains(t, out, "dumpinfo:")
}

func TestExtractAfterVerifyReadsBundledLogs(t *testing.T) {
	env := setupCLITestEnv(t)
	base := cleanRipDump(t, env, true)
	selection := []string{"-e", "cleanrip", "-s", "nintendo_wii", "-m", "nintendo_wii_disc"}
	extractArgs := append(append([]string{"--json", "extract"}, selection...), "--no-hash", base)

	extractMetadata := func() extractView {
		t.Helper()
		out, _, err := runCLI(t, extractArgs, env.configPath)
		if err != nil {
			t.Fatalf("extract: %v", err)
		}
		var view extractView
		if err := json.Unmarshal([]byte(out), &view); err != nil {
			t.Fatalf("decode output: %v\n%s", err, out)
		}
		return view
	}

	before := extractMetadata()
	if before.Metadata.CRC32 != "01234567" || before.Metadata.BCA == "" {
		t.Fatalf("unexpected metadata before verify %+v", before.Metadata)
	}

	if _, _, err := runCLI(t, append(append([]string{"verify"}, selection...), base), env.configPath); err != nil {
		t.Fatalf("verify: %v", err)
	}
	if _, err := os.Stat(base + "-dumpinfo.txt"); !os.IsNotExist(err) {
		t.Fatalf("expected dump info moved into bundle, stat err=%v", err)
	}

	after := extractMetadata()
	if diff := cmp.Diff(before, after); diff != "" {
		t.Fatalf("metadata changed after archiving (-before +after):\n%s", diff)
	}
}
