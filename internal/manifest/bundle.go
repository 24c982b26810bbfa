package manifest

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/klauspost/compress/zip"
)

// BundleSuffix is appended to a dump's base path to name its log bundle.
const BundleSuffix = "_logs.zip"

const maxBundleEntryBytes = 256 << 20

// BundlePath returns the log bundle path for base.
func BundlePath(base string) string {
	return base + BundleSuffix
}

// Bundle is an opened log bundle. Entries are looked up by file name, so
// any path ending in an archived name resolves to its entry. A nil Bundle
// holds nothing.
type Bundle struct {
	reader *zip.ReadCloser
	files  map[string]*zip.File
}

// Close releases the bundle file.
func (b *Bundle) Close() error {
	if b == nil || b.reader == nil {
		return nil
	}
	return b.reader.Close()
}

func (b *Bundle) has(path string) bool {
	if b == nil {
		return false
	}
	_, ok := b.files[filepath.Base(path)]
	return ok
}

// ReadFile returns the archived content of the file named like path.
func (b *Bundle) ReadFile(path string) ([]byte, bool) {
	if b == nil {
		return nil, false
	}
	file, ok := b.files[filepath.Base(path)]
	if !ok {
		return nil, false
	}
	data, err := readBundleFile(file)
	if err != nil {
		return nil, false
	}
	return data, true
}

// OpenBundle opens the log bundle at path for reading.
func OpenBundle(path string) (*Bundle, error) {
	reader, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open bundle: %w", err)
	}
	files := make(map[string]*zip.File, len(reader.File))
	for _, file := range reader.File {
		files[file.Name] = file
	}
	return &Bundle{reader: reader, files: files}, nil
}

func readBundleFile(file *zip.File) ([]byte, error) {
	reader, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = reader.Close()
	}()
	payload, err := io.ReadAll(io.LimitReader(reader, maxBundleEntryBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(payload)) > maxBundleEntryBytes {
		return nil, fmt.Errorf("bundle entry %s too large", file.Name)
	}
	return payload, nil
}
