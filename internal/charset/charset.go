// Package charset implements charset detection, target-encoding
// selection, and re-encoding, grounded on
// gettext-tools/src/msgl-3way.c's charset-handling section (lines
// 124-407). It uses golang.org/x/text as the external charset
// registry/encoder (canonicalize_charset, iconv_list, is_all_ascii,
// is_ascii_compatible).
package charset

import (
	"bytes"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/potools/msgmerge3/internal/catalog"
)

// ASCII and UTF8 are the two canonical charset names this package treats
// specially: ASCII never needs a real codec (it's a subset of virtually
// every other encoding's byte range), and UTF8 is the fallback target
// when more than one non-ASCII encoding is observed.
const (
	ASCII = "US-ASCII"
	UTF8  = "UTF-8"
)

// Canonicalize normalizes an encoding alias to its canonical name via the
// IANA charset registry, matching po_charset_canonicalize. ok is false if
// the name is not a portable encoding name.
func Canonicalize(name string) (canon string, ok bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", false
	}
	if strings.EqualFold(name, "ASCII") || strings.EqualFold(name, "US-ASCII") ||
		strings.EqualFold(name, "ANSI_X3.4-1968") {
		return ASCII, true
	}
	if strings.EqualFold(name, "UTF8") {
		return UTF8, true
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return "", false
	}
	canon, err = ianaindex.IANA.Name(enc)
	if err != nil || canon == "" {
		return "", false
	}
	if strings.EqualFold(canon, "UTF-8") {
		return UTF8, true
	}
	return canon, true
}

// codec resolves a canonical charset name to an encoding.Encoding.
func codec(canon string) (encoding.Encoding, error) {
	switch canon {
	case ASCII:
		// ASCII is a byte-identical subset of UTF-8 and of every
		// ASCII-compatible single/multi-byte encoding this package deals
		// with, so no transformation is needed either way.
		return encoding.Nop, nil
	case UTF8:
		return unicode.UTF8, nil
	default:
		return ianaindex.IANA.Encoding(canon)
	}
}

// IsASCIICompatible reports whether canon maps the ASCII printable range
// onto itself byte-for-byte, matching po_charset_ascii_compatible.
func IsASCIICompatible(canon string) bool {
	if canon == ASCII {
		return true
	}
	enc, err := codec(canon)
	if err != nil || enc == nil {
		return false
	}
	ascii := make([]byte, 0, 95)
	for b := byte(0x20); b < 0x7f; b++ {
		ascii = append(ascii, b)
	}
	out, err := transform.Bytes(enc.NewEncoder(), ascii)
	if err != nil {
		return false
	}
	return bytes.Equal(out, ascii)
}

// IsAllASCII reports whether every byte of every identifier, comment, and
// translation in the domain's messages is 7-bit ASCII, matching
// is_ascii_message_list.
func IsAllASCII(d *catalog.Domain) bool {
	isASCII := func(s string) bool {
		for i := 0; i < len(s); i++ {
			if s[i] >= 0x80 {
				return false
			}
		}
		return true
	}
	isASCIIBytes := func(b []byte) bool {
		for _, c := range b {
			if c >= 0x80 {
				return false
			}
		}
		return true
	}
	for _, m := range d.Messages {
		if !isASCII(m.ID) || !isASCII(m.Context) {
			return false
		}
		if !isASCIIBytes(m.Translation) {
			return false
		}
		for _, c := range m.Comments {
			if !isASCII(c) {
				return false
			}
		}
		for _, c := range m.ExtractedComments {
			if !isASCII(c) {
				return false
			}
		}
	}
	return true
}

// reencodeBytes converts data from one canonical charset to another.
func reencodeBytes(data []byte, from, to string) ([]byte, error) {
	if from == to {
		return data, nil
	}
	fromEnc, err := codec(from)
	if err != nil {
		return nil, err
	}
	toEnc, err := codec(to)
	if err != nil {
		return nil, err
	}
	return transform.Bytes(transform.Chain(fromEnc.NewDecoder(), toEnc.NewEncoder()), data)
}
