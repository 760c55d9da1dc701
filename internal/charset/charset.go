// Package charset wraps readers and writers for the text encodings Japanese
// bank exports and accounting software use.
package charset

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Charset names a supported file encoding.
type Charset string

const (
	UTF8     Charset = "utf-8"
	ShiftJIS Charset = "shift_jis"
)

// Parse resolves a user-supplied encoding name. Empty means UTF-8.
func Parse(name string) (Charset, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8", "utf-8-sig":
		return UTF8, nil
	case "shift_jis", "shift-jis", "sjis", "cp932":
		return ShiftJIS, nil
	}
	return "", fmt.Errorf("unsupported encoding %q", name)
}

// NewReader decodes r to UTF-8. A leading UTF-8 byte order mark is dropped.
func NewReader(r io.Reader, cs Charset) io.Reader {
	if cs == ShiftJIS {
		return transform.NewReader(r, japanese.ShiftJIS.NewDecoder())
	}
	return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
}

// NewWriter encodes UTF-8 text written to it into cs. Characters Shift_JIS
// cannot represent are replaced. Close must be called to flush.
func NewWriter(w io.Writer, cs Charset) io.WriteCloser {
	if cs == ShiftJIS {
		return transform.NewWriter(w, encoding.ReplaceUnsupported(japanese.ShiftJIS.NewEncoder()))
	}
	return nopCloser{w}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
