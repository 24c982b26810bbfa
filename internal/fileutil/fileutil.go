package fileutil

import (
	"bytes"
	"crypto/md5"  //nolint:gosec
	"crypto/sha1" //nolint:gosec
	"encoding/hex"
	"fmt"
	"hash/crc32"
	"io"
	"os"
)

// Checksums is the size and hash triad of one file, hex encoded lowercase.
type Checksums struct {
	Size  int64
	CRC32 string
	MD5   string
	SHA1  string
}

// HashFile streams path once through CRC32, MD5, and SHA-1.
func HashFile(path string) (Checksums, error) {
	in, err := os.Open(path)
	if err != nil {
		return Checksums{}, err
	}
	defer in.Close()
	return HashReader(in)
}

// HashReader computes the checksum triad of everything read from r.
func HashReader(r io.Reader) (Checksums, error) {
	crc := crc32.NewIEEE()
	md := md5.New()   //nolint:gosec
	sha := sha1.New() //nolint:gosec
	size, err := io.Copy(io.MultiWriter(crc, md, sha), r)
	if err != nil {
		return Checksums{}, err
	}
	return Checksums{
		Size:  size,
		CRC32: hex.EncodeToString(crc.Sum(nil)),
		MD5:   hex.EncodeToString(md.Sum(nil)),
		SHA1:  hex.EncodeToString(sha.Sum(nil)),
	}, nil
}

// Hasher implements the extraction hashing collaborator on the local
// filesystem.
type Hasher struct{}

// Hash returns the checksums of the file at path.
func (Hasher) Hash(path string) (Checksums, error) {
	return HashFile(path)
}

// CopyFileVerified streams src to dst with SHA-1 + size integrity verification.
// Removes dst on mismatch.
func CopyFileVerified(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}
	srcSize := srcInfo.Size()

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() {
		_ = out.Close()
	}()

	srcHasher := sha1.New() //nolint:gosec
	dstHasher := sha1.New() //nolint:gosec
	tee := io.TeeReader(in, srcHasher)
	multi := io.MultiWriter(out, dstHasher)

	written, err := io.Copy(multi, tee)
	if err != nil {
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	if written != srcSize {
		_ = os.Remove(dst)
		return fmt.Errorf("copy size mismatch: source %d bytes, copied %d bytes", srcSize, written)
	}

	if !bytes.Equal(srcHasher.Sum(nil), dstHasher.Sum(nil)) {
		_ = os.Remove(dst)
		return fmt.Errorf("copy hash mismatch: file corrupted during copy")
	}

	return nil
}

// Exists reports whether path names an existing regular file.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
