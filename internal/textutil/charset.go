package textutil

import (
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// NewLogReader wraps r so engine logs decode to UTF-8. A byte order mark
// selects UTF-8 or UTF-16; without one the stream is read as UTF-8 when
// valid and Windows-1252 otherwise, which is what the Windows builds of the
// dumping tools write.
func NewLogReader(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(&legacyFallback{}))
}

// DecodeLog converts a whole log buffer to UTF-8 using the same rules as
// NewLogReader.
func DecodeLog(data []byte) ([]byte, error) {
	out, _, err := transform.Bytes(unicode.BOMOverride(&legacyFallback{}), data)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// legacyFallback passes valid UTF-8 through and maps everything else from
// Windows-1252. Invalid sequences split across buffers are held back until
// more input arrives.
type legacyFallback struct {
	cp1252 transform.Transformer
}

func (t *legacyFallback) Reset() {
	if t.cp1252 != nil {
		t.cp1252.Reset()
	}
}

func (t *legacyFallback) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	nDst, nSrc := 0, 0
	for nSrc < len(src) {
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size <= 1 {
			if !atEOF && !utf8.FullRune(src[nSrc:]) {
				return nDst, nSrc, transform.ErrShortSrc
			}
			if t.cp1252 == nil {
				t.cp1252 = charmap.Windows1252.NewDecoder()
			}
			var buf [4]byte
			n, _, err := t.cp1252.Transform(buf[:], src[nSrc:nSrc+1], true)
			if err != nil {
				return nDst, nSrc, err
			}
			if nDst+n > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += copy(dst[nDst:], buf[:n])
			nSrc++
			continue
		}
		if nDst+size > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], src[nSrc:nSrc+size])
		nSrc += size
	}
	return nDst, nSrc, nil
}
