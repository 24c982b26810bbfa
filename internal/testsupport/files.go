package testsupport

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// WriteImage fills path with size bytes of a repeating pattern, standing in
// for a dumped image. A size <= 0 writes a single byte.
func WriteImage(t testing.TB, path string, size int64) {
	t.Helper()

	if size <= 0 {
		size = 1
	}
	WriteText(t, path, string(bytes.Repeat([]byte{0x42}, int(size))))
}

// WriteText writes content to path, creating parent directories.
func WriteText(t testing.TB, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteOutputs creates one small file per suffix appended to base.
func WriteOutputs(t testing.TB, base string, suffixes ...string) {
	t.Helper()

	for _, suffix := range suffixes {
		WriteText(t, base+suffix, "x\n")
	}
}
