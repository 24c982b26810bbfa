package extract

import (
	"reflect"

	"dumpdriver/internal/fileutil"
	"dumpdriver/internal/target"
)

// ROM is one datafile entry describing a produced image file.
type ROM struct {
	Name  string `json:"name" yaml:"name"`
	Size  int64  `json:"size" yaml:"size"`
	CRC32 string `json:"crc32,omitempty" yaml:"crc32,omitempty"`
	MD5   string `json:"md5,omitempty" yaml:"md5,omitempty"`
	SHA1  string `json:"sha1,omitempty" yaml:"sha1,omitempty"`
}

// Metadata is the normalized record scraped from one dump's logs.
type Metadata struct {
	Size           *int64            `json:"size,omitempty" yaml:"size,omitempty"`
	CRC32          string            `json:"crc32,omitempty" yaml:"crc32,omitempty"`
	MD5            string            `json:"md5,omitempty" yaml:"md5,omitempty"`
	SHA1           string            `json:"sha1,omitempty" yaml:"sha1,omitempty"`
	Region         target.Region     `json:"region,omitempty" yaml:"region,omitempty"`
	Version        string            `json:"version,omitempty" yaml:"version,omitempty"`
	Layerbreaks    []int64           `json:"layerbreaks,omitempty" yaml:"layerbreaks,omitempty"`
	PVD            string            `json:"pvd,omitempty" yaml:"pvd,omitempty"`
	BCA            string            `json:"bca,omitempty" yaml:"bca,omitempty"`
	PIC            string            `json:"pic,omitempty" yaml:"pic,omitempty"`
	DiscKey        string            `json:"disc_key,omitempty" yaml:"disc_key,omitempty"`
	DiscID         string            `json:"disc_id,omitempty" yaml:"disc_id,omitempty"`
	InternalSerial string            `json:"internal_serial,omitempty" yaml:"internal_serial,omitempty"`
	InternalName   string            `json:"internal_name,omitempty" yaml:"internal_name,omitempty"`
	DumperVersion  string            `json:"dumper_version,omitempty" yaml:"dumper_version,omitempty"`
	ROMs           []ROM             `json:"roms,omitempty" yaml:"roms,omitempty"`
	Artifacts      map[string]string `json:"artifacts,omitempty" yaml:"artifacts,omitempty"`
}

// Hasher computes checksums of a produced image file. fileutil.Hasher is
// the filesystem implementation.
type Hasher interface {
	Hash(path string) (fileutil.Checksums, error)
}

// Empty reports whether nothing was scraped. Artifacts are raw copies of
// the logs and do not count.
func (m *Metadata) Empty() bool {
	scraped := *m
	scraped.Artifacts = nil
	return reflect.DeepEqual(scraped, Metadata{})
}

// SetSize records size.
func (m *Metadata) SetSize(size int64) {
	m.Size = &size
}

// HasHashes reports whether all three hashes are populated.
func (m *Metadata) HasHashes() bool {
	return m.CRC32 != "" && m.MD5 != "" && m.SHA1 != ""
}

// ApplyROM copies the size and hashes of a datafile entry into the record.
func (m *Metadata) ApplyROM(rom ROM) {
	m.SetSize(rom.Size)
	m.CRC32 = rom.CRC32
	m.MD5 = rom.MD5
	m.SHA1 = rom.SHA1
}

// FillFromImage hashes image when any hash is blank and fills the blanks,
// along with the size when it is unset. When every hash is already known
// only the size is taken, from the file itself. Populated fields are left
// untouched. It reports whether the image was hashed.
func (m *Metadata) FillFromImage(image string, hasher Hasher) bool {
	if m.HasHashes() {
		if m.Size == nil {
			if size, ok := FileSize(image); ok {
				m.SetSize(size)
			}
		}
		return false
	}
	if hasher == nil || !fileutil.Exists(image) {
		return false
	}
	sums, err := hasher.Hash(image)
	if err != nil {
		return false
	}
	if m.Size == nil {
		m.SetSize(sums.Size)
	}
	if m.CRC32 == "" {
		m.CRC32 = sums.CRC32
	}
	if m.MD5 == "" {
		m.MD5 = sums.MD5
	}
	if m.SHA1 == "" {
		m.SHA1 = sums.SHA1
	}
	return true
}

// ClearSingleLayer drops the layerbreak when the reported first-layer
// length in sectors covers the whole image, which marks a single-layer disc.
func (m *Metadata) ClearSingleLayer(layer0Sectors int64) {
	if m.Size != nil && SingleLayer(layer0Sectors, *m.Size) {
		m.Layerbreaks = nil
	}
}
