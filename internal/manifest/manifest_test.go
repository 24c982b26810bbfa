package manifest_test

import (
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofrs/flock"
	"github.com/google/go-cmp/cmp"

	"dumpdriver/internal/manifest"
	"dumpdriver/internal/target"
)

func sampleEntries() []manifest.Entry {
	return []manifest.Entry{
		{Names: []string{"-dumpinfo.txt"}, Key: "log", Attrs: manifest.Required | manifest.Artifact | manifest.Archivable},
		{Names: []string{".bca"}, Key: "bca", Attrs: manifest.Required | manifest.Artifact | manifest.Binary | manifest.Archivable},
		{Names: []string{"_PIC.bin"}, Attrs: manifest.Required, Media: []target.MediaType{target.MediaBluRay}},
		{Names: []string{".scram"}, Attrs: manifest.Deletable},
		{Names: []string{"Log.txt", "log.txt"}, InDir: true, Attrs: manifest.Required, Systems: []target.System{target.SystemMicrosoftXbox}},
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestCheckAllPresentReportsMissingRequired(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "game")
	writeFile(t, base+"-dumpinfo.txt", "log")

	result := manifest.CheckAllPresent(sampleEntries(), base, target.SystemNintendoGameCube, target.MediaGameCube, false)
	if result.AllPresent {
		t.Fatal("expected incomplete result")
	}
	if diff := cmp.Diff([]string{base + ".bca"}, result.Missing); diff != "" {
		t.Fatalf("unexpected missing list (-want +got):\n%s", diff)
	}

	writeFile(t, base+".bca", "\x00\x01")
	result = manifest.CheckAllPresent(sampleEntries(), base, target.SystemNintendoGameCube, target.MediaGameCube, false)
	if !result.AllPresent || len(result.Missing) != 0 {
		t.Fatalf("expected complete result, got %+v", result)
	}
}

func TestCheckAllPresentHonorsConditions(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "game")
	writeFile(t, base+"-dumpinfo.txt", "log")
	writeFile(t, base+".bca", "bca")

	result := manifest.CheckAllPresent(sampleEntries(), base, target.SystemSonyPlayStation3, target.MediaBluRay, false)
	if diff := cmp.Diff([]string{base + "_PIC.bin"}, result.Missing); diff != "" {
		t.Fatalf("unexpected missing list (-want +got):\n%s", diff)
	}

	result = manifest.CheckAllPresent(sampleEntries(), base, target.SystemMicrosoftXbox, target.MediaDVD, false)
	if diff := cmp.Diff([]string{filepath.Join(dir, "Log.txt")}, result.Missing); diff != "" {
		t.Fatalf("unexpected missing list (-want +got):\n%s", diff)
	}
	writeFile(t, filepath.Join(dir, "log.txt"), "xbc")
	result = manifest.CheckAllPresent(sampleEntries(), base, target.SystemMicrosoftXbox, target.MediaDVD, false)
	if !result.AllPresent {
		t.Fatalf("expected alternative name to satisfy entry, got %+v", result)
	}
}

func TestArchiveThenPrecheckFindsBundledFiles(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "game")
	writeFile(t, base+"-dumpinfo.txt", "--File Generated by CleanRip\n")
	writeFile(t, base+".bca", "\x00\x10\x20")

	res, err := manifest.Archive(sampleEntries(), base, target.SystemNintendoWii, target.MediaWii, true)
	if err != nil {
		t.Fatalf("Archive returned error: %v", err)
	}
	if res.Bundle != base+"_logs.zip" {
		t.Fatalf("unexpected bundle path %q", res.Bundle)
	}
	if len(res.Added) != 2 || len(res.Removed) != 2 {
		t.Fatalf("unexpected archive result %+v", res)
	}
	if _, err := os.Stat(base + "-dumpinfo.txt"); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected original removed, stat err=%v", err)
	}

	if result := manifest.CheckAllPresent(sampleEntries(), base, target.SystemNintendoWii, target.MediaWii, false); result.AllPresent {
		t.Fatal("expected files missing without precheck")
	}
	result := manifest.CheckAllPresent(sampleEntries(), base, target.SystemNintendoWii, target.MediaWii, true)
	if !result.AllPresent {
		t.Fatalf("expected bundle to satisfy precheck, got %+v", result)
	}

	artifacts := manifest.Artifacts(sampleEntries(), base, target.SystemNintendoWii, target.MediaWii)
	want := map[string]string{
		"log": base64.StdEncoding.EncodeToString([]byte("--File Generated by CleanRip\n")),
		"bca": base64.StdEncoding.EncodeToString([]byte("\x00\x10\x20")),
	}
	if diff := cmp.Diff(want, artifacts); diff != "" {
		t.Fatalf("unexpected artifacts (-want +got):\n%s", diff)
	}
}

func TestArchiveMergesExistingBundle(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "game")
	writeFile(t, base+"-dumpinfo.txt", "first")
	if _, err := manifest.Archive(sampleEntries(), base, target.SystemNintendoWii, target.MediaWii, true); err != nil {
		t.Fatalf("first Archive returned error: %v", err)
	}
	writeFile(t, base+".bca", "bca")
	if _, err := manifest.Archive(sampleEntries(), base, target.SystemNintendoWii, target.MediaWii, false); err != nil {
		t.Fatalf("second Archive returned error: %v", err)
	}
	if err := os.Remove(base + ".bca"); err != nil {
		t.Fatal(err)
	}
	result := manifest.CheckAllPresent(sampleEntries(), base, target.SystemNintendoWii, target.MediaWii, true)
	if !result.AllPresent {
		t.Fatalf("expected both files in merged bundle, got %+v", result)
	}
}

func TestArchiveRespectsLock(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "game")
	writeFile(t, base+"-dumpinfo.txt", "log")

	held := flock.New(manifest.BundlePath(base) + ".lock")
	ok, err := held.TryLock()
	if err != nil || !ok {
		t.Fatalf("failed to take lock: %v", err)
	}
	defer held.Unlock()

	if _, err := manifest.Archive(sampleEntries(), base, target.SystemNintendoWii, target.MediaWii, false); !errors.Is(err, manifest.ErrBundleLocked) {
		t.Fatalf("expected ErrBundleLocked, got %v", err)
	}
}

func TestArchiveKeepsLockFileForLaterRuns(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "game")
	lockPath := manifest.BundlePath(base) + ".lock"
	writeFile(t, base+"-dumpinfo.txt", "log")

	if _, err := manifest.Archive(sampleEntries(), base, target.SystemNintendoWii, target.MediaWii, false); err != nil {
		t.Fatalf("Archive returned error: %v", err)
	}
	if _, err := os.Stat(lockPath); err != nil {
		t.Fatalf("expected lock file kept after archiving: %v", err)
	}

	held := flock.New(lockPath)
	ok, err := held.TryLock()
	if err != nil || !ok {
		t.Fatalf("failed to take lock: %v", err)
	}
	defer held.Unlock()
	if _, err := manifest.Archive(sampleEntries(), base, target.SystemNintendoWii, target.MediaWii, false); !errors.Is(err, manifest.ErrBundleLocked) {
		t.Fatalf("expected ErrBundleLocked on the kept lock file, got %v", err)
	}
}

func TestOpenBundleReadsByFileName(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "game")
	writeFile(t, base+"-dumpinfo.txt", "CRC32: 01234567\n")

	if _, err := manifest.Archive(sampleEntries(), base, target.SystemNintendoWii, target.MediaWii, true); err != nil {
		t.Fatalf("Archive returned error: %v", err)
	}
	bundle, err := manifest.OpenBundle(manifest.BundlePath(base))
	if err != nil {
		t.Fatalf("OpenBundle returned error: %v", err)
	}
	defer bundle.Close()

	data, ok := bundle.ReadFile(base + "-dumpinfo.txt")
	if !ok || string(data) != "CRC32: 01234567\n" {
		t.Fatalf("unexpected bundled content %q %v", data, ok)
	}
	if _, ok := bundle.ReadFile(base + ".bca"); ok {
		t.Fatal("expected unarchived file to be absent")
	}

	var none *manifest.Bundle
	if _, ok := none.ReadFile(base + "-dumpinfo.txt"); ok {
		t.Fatal("expected nil bundle to hold nothing")
	}
}

func TestDeleteRemovesOnlyDeletable(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "game")
	writeFile(t, base+".scram", "scrambled")
	writeFile(t, base+"-dumpinfo.txt", "log")

	removed, err := manifest.Delete(sampleEntries(), base, target.SystemNintendoWii, target.MediaWii)
	if err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if diff := cmp.Diff([]string{base + ".scram"}, removed); diff != "" {
		t.Fatalf("unexpected removed list (-want +got):\n%s", diff)
	}
	if _, err := os.Stat(base + "-dumpinfo.txt"); err != nil {
		t.Fatalf("expected log to remain: %v", err)
	}
}

func TestArtifactsDecodesLegacyText(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "game")
	writeFile(t, base+"-dumpinfo.txt", "Caf\xe9")

	artifacts := manifest.Artifacts(sampleEntries(), base, target.SystemNintendoWii, target.MediaWii)
	want := base64.StdEncoding.EncodeToString([]byte("Café"))
	if artifacts["log"] != want {
		t.Fatalf("unexpected log artifact %q", artifacts["log"])
	}
	if _, ok := artifacts["bca"]; ok {
		t.Fatal("expected absent artifact to be skipped")
	}
}
