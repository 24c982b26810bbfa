package extract

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"

	"dumpdriver/internal/textutil"
)

// Fallback returns the content of a dump file that is no longer on disk.
// manifest.Bundle reads archived logs this way.
type Fallback interface {
	ReadFile(path string) ([]byte, bool)
}

// Source reads the files a dump left behind. Files missing on disk are
// looked up in Bundle when one is set. Hasher, when set, checksums the
// image for records whose logs carry no hashes.
type Source struct {
	Bundle Fallback
	Hasher Hasher
}

func (s Source) open(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err == nil {
		return file, nil
	}
	if s.Bundle == nil || !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	data, ok := s.Bundle.ReadFile(path)
	if !ok {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// Has reports whether path is on disk as a regular file or in the bundle.
func (s Source) Has(path string) bool {
	if _, ok := FileSize(path); ok {
		return true
	}
	if s.Bundle == nil {
		return false
	}
	_, ok := s.Bundle.ReadFile(path)
	return ok
}

// ScanLines streams the decoded lines of path to fn until fn returns false.
// It reports false when the file cannot be opened or read to completion.
func (s Source) ScanLines(path string, fn func(line string) bool) bool {
	file, err := s.open(path)
	if err != nil {
		return false
	}
	defer file.Close()

	scanner := bufio.NewScanner(textutil.NewLogReader(file))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		if !fn(strings.TrimRight(scanner.Text(), "\r")) {
			return true
		}
	}
	return scanner.Err() == nil
}

// FirstLine returns the first line of path.
func (s Source) FirstLine(path string) (string, bool) {
	var (
		first string
		found bool
	)
	s.ScanLines(path, func(line string) bool {
		first, found = line, true
		return false
	})
	return first, found
}

// FindValue returns the trimmed remainder of the first line that starts
// with prefix, after leading whitespace.
func (s Source) FindValue(path, prefix string) (string, bool) {
	var (
		value string
		found bool
	)
	s.ScanLines(path, func(line string) bool {
		trimmed := strings.TrimSpace(line)
		if rest, ok := strings.CutPrefix(trimmed, prefix); ok {
			value, found = strings.TrimSpace(rest), true
			return false
		}
		return true
	})
	return value, found
}

// ReadROMs collects every datafile entry in path.
func (s Source) ReadROMs(path string) ([]ROM, bool) {
	var roms []ROM
	s.ScanLines(path, func(line string) bool {
		if rom, ok := ParseROM(line); ok {
			roms = append(roms, rom)
		}
		return true
	})
	return roms, len(roms) > 0
}

// ReadPVD returns the six hex dump rows starting at offset 0x320 of the
// primary volume descriptor. The dump starts after the first line that
// contains header.
func (s Source) ReadPVD(path, header string) (string, bool) {
	var (
		rows    []string
		inBlock bool
	)
	s.ScanLines(path, func(line string) bool {
		if !inBlock {
			inBlock = strings.Contains(line, header)
			return true
		}
		trimmed := strings.TrimSpace(line)
		if len(rows) == 0 && !strings.HasPrefix(trimmed, "0320") {
			return true
		}
		rows = append(rows, trimmed)
		return len(rows) < pvdRows
	})
	if len(rows) != pvdRows {
		return "", false
	}
	return strings.Join(rows, "\n") + "\n", true
}

// ReadBinary reads length bytes of path starting at offset. A length of -1
// reads to the end of the file.
func (s Source) ReadBinary(path string, offset int64, length int) ([]byte, bool) {
	file, err := s.open(path)
	if err != nil {
		return nil, false
	}
	defer file.Close()
	if _, err := io.CopyN(io.Discard, file, offset); err != nil {
		return nil, false
	}
	if length < 0 {
		data, err := io.ReadAll(file)
		if err != nil || len(data) == 0 {
			return nil, false
		}
		return data, true
	}
	buf := make([]byte, length)
	if _, err := io.ReadFull(file, buf); err != nil {
		return nil, false
	}
	return buf, true
}

