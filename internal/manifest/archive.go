package manifest

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/klauspost/compress/zip"

	"dumpdriver/internal/target"
	"dumpdriver/internal/textutil"
)

// ArchiveResult describes the outcome of Archive.
type ArchiveResult struct {
	Bundle string
	// Added lists the source paths written into the bundle.
	Added []string
	// Removed lists source paths deleted after archiving.
	Removed []string
}

// ErrBundleLocked is returned when another process holds the bundle lock.
var ErrBundleLocked = errors.New("log bundle locked")

// Archive writes every archivable file that applies to the target into the
// log bundle for base. Entries already in an existing bundle are preserved
// unless a file of the same name replaces them. When removeOriginals is set
// the archived source files are deleted after the bundle is written.
func Archive(entries []Entry, base string, system target.System, media target.MediaType, removeOriginals bool) (ArchiveResult, error) {
	bundlePath := BundlePath(base)
	result := ArchiveResult{Bundle: bundlePath}

	var sources []string
	for _, entry := range Select(entries, system, media) {
		if !entry.Attrs.Has(Archivable) {
			continue
		}
		if path, ok := locate(entry.Paths(base)); ok {
			sources = append(sources, path)
		}
	}
	if len(sources) == 0 {
		return result, nil
	}

	lock := flock.New(bundlePath + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return result, fmt.Errorf("acquire bundle lock: %w", err)
	}
	if !locked {
		return result, ErrBundleLocked
	}
	defer func() {
		_ = lock.Unlock()
	}()

	tmpPath := bundlePath + ".tmp"
	if err := writeBundle(tmpPath, bundlePath, sources); err != nil {
		_ = os.Remove(tmpPath)
		return result, err
	}
	if err := os.Rename(tmpPath, bundlePath); err != nil {
		_ = os.Remove(tmpPath)
		return result, fmt.Errorf("finalize bundle: %w", err)
	}
	result.Added = sources

	if removeOriginals {
		for _, path := range sources {
			if err := os.Remove(path); err != nil {
				return result, fmt.Errorf("remove archived %s: %w", filepath.Base(path), err)
			}
			result.Removed = append(result.Removed, path)
		}
	}
	return result, nil
}

func writeBundle(tmpPath, existingPath string, sources []string) (err error) {
	out, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("create bundle: %w", err)
	}
	defer func() {
		if closeErr := out.Close(); err == nil && closeErr != nil {
			err = closeErr
		}
	}()

	writer := zip.NewWriter(out)
	replaced := make(map[string]struct{}, len(sources))
	for _, path := range sources {
		replaced[filepath.Base(path)] = struct{}{}
	}

	if _, statErr := os.Stat(existingPath); statErr == nil {
		existing, openErr := OpenBundle(existingPath)
		if openErr != nil {
			return openErr
		}
		for _, file := range existing.reader.File {
			if _, skip := replaced[file.Name]; skip {
				continue
			}
			if err := copyBundleEntry(writer, file); err != nil {
				_ = existing.Close()
				return err
			}
		}
		if err := existing.Close(); err != nil {
			return err
		}
	}

	for _, path := range sources {
		if err := addFile(writer, path); err != nil {
			return err
		}
	}
	return writer.Close()
}

func copyBundleEntry(writer *zip.Writer, file *zip.File) error {
	data, err := readBundleFile(file)
	if err != nil {
		return err
	}
	dst, err := writer.CreateHeader(&zip.FileHeader{Name: file.Name, Method: zip.Deflate, Modified: file.Modified})
	if err != nil {
		return err
	}
	_, err = dst.Write(data)
	return err
}

func addFile(writer *zip.Writer, path string) error {
	in, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer in.Close()

	modified := time.Now()
	if info, statErr := in.Stat(); statErr == nil {
		modified = info.ModTime()
	}
	dst, err := writer.CreateHeader(&zip.FileHeader{Name: filepath.Base(path), Method: zip.Deflate, Modified: modified})
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, in); err != nil {
		return fmt.Errorf("archive %s: %w", filepath.Base(path), err)
	}
	return nil
}

// Delete removes every deletable file that applies to the target and
// returns the removed paths.
func Delete(entries []Entry, base string, system target.System, media target.MediaType) ([]string, error) {
	var removed []string
	for _, entry := range Select(entries, system, media) {
		if !entry.Attrs.Has(Deletable) {
			continue
		}
		for _, path := range entry.Paths(base) {
			err := os.Remove(path)
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			if err != nil {
				return removed, fmt.Errorf("delete %s: %w", filepath.Base(path), err)
			}
			removed = append(removed, path)
		}
	}
	return removed, nil
}

// Artifacts returns the base64 payload of every artifact entry that applies
// to the target, keyed by artifact key. Files are read from disk first and
// then from the log bundle. Text artifacts are normalized to UTF-8 before
// encoding; binary artifacts are encoded as-is. Unreadable files are skipped.
func Artifacts(entries []Entry, base string, system target.System, media target.MediaType) map[string]string {
	var bundle *Bundle
	if opened, err := OpenBundle(BundlePath(base)); err == nil {
		bundle = opened
		defer bundle.Close()
	}

	out := make(map[string]string)
	for _, entry := range Select(entries, system, media) {
		if !entry.Attrs.Has(Artifact) || entry.Key == "" {
			continue
		}
		data, ok := readEntry(entry.Paths(base), bundle)
		if !ok {
			continue
		}
		if !entry.Attrs.Has(Binary) {
			decoded, err := textutil.DecodeLog(data)
			if err != nil {
				continue
			}
			data = decoded
		}
		out[entry.Key] = base64.StdEncoding.EncodeToString(data)
	}
	return out
}

func readEntry(paths []string, bundle *Bundle) ([]byte, bool) {
	if path, ok := locate(paths); ok {
		data, err := os.ReadFile(path)
		if err == nil {
			return data, true
		}
	}
	for _, path := range paths {
		if data, ok := bundle.ReadFile(path); ok {
			return data, true
		}
	}
	return nil, false
}
