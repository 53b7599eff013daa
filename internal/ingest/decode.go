package ingest

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Encoding is one rung of the decode ladder. Decode returns false when the
// bytes are not valid in that encoding; the ladder then moves on.
type Encoding struct {
	Name   string
	Decode func([]byte) (string, bool)
}

// DefaultEncodings returns the ladder in fixed priority order. The first
// encoding that decodes without error wins; a wrong-but-valid decode earlier
// in the ladder is accepted without cross-validation.
func DefaultEncodings() []Encoding {
	return []Encoding{
		{Name: "utf-8", Decode: decodeUTF8},
		{Name: "latin-1", Decode: decodeCharmapFunc(charmap.ISO8859_1)},
		{Name: "cp1252", Decode: decodeCharmapFunc(charmap.Windows1252)},
		{Name: "iso-8859-1", Decode: decodeCharmapFunc(charmap.ISO8859_1)},
		{Name: "utf-16", Decode: decodeUTF16BOM},
		{Name: "utf-16-le", Decode: func(b []byte) (string, bool) { return decodeUTF16Bytes(b, true) }},
		{Name: "utf-16-be", Decode: func(b []byte) (string, bool) { return decodeUTF16Bytes(b, false) }},
		{Name: "ascii", Decode: decodeASCII},
		{Name: "mac-roman", Decode: decodeCharmapFunc(charmap.Macintosh)},
		{Name: "cp437", Decode: decodeCharmapFunc(charmap.CodePage437)},
	}
}

// DecodeText runs raw bytes down the ladder and returns the decoded text and
// the name of the encoding that succeeded.
func DecodeText(raw []byte) (string, string, error) {
	return decodeWith(raw, DefaultEncodings())
}

func decodeWith(raw []byte, encodings []Encoding) (string, string, error) {
	tried := make([]string, 0, len(encodings))
	for _, enc := range encodings {
		tried = append(tried, enc.Name)
		if text, ok := enc.Decode(raw); ok {
			return text, enc.Name, nil
		}
	}
	return "", "", &DecodeError{Tried: tried}
}

func decodeUTF8(b []byte) (string, bool) {
	if !utf8.Valid(b) {
		return "", false
	}
	return string(b), true
}

func decodeASCII(b []byte) (string, bool) {
	for _, c := range b {
		if c > 0x7f {
			return "", false
		}
	}
	return string(b), true
}

// decodeCharmapFunc builds a byte-wise decoder that fails on code points the
// page leaves undefined (x/text would silently substitute U+FFFD).
func decodeCharmapFunc(cm *charmap.Charmap) func([]byte) (string, bool) {
	return func(b []byte) (string, bool) {
		var sb strings.Builder
		sb.Grow(len(b))
		for _, c := range b {
			r := cm.DecodeByte(c)
			if r == utf8.RuneError {
				return "", false
			}
			sb.WriteRune(r)
		}
		return sb.String(), true
	}
}

// decodeUTF16BOM honours a byte-order mark when present and assumes
// little-endian otherwise, matching the loose "utf-16" codec behaviour.
func decodeUTF16BOM(b []byte) (string, bool) {
	little := true
	if len(b) >= 2 {
		switch {
		case b[0] == 0xff && b[1] == 0xfe:
			b = b[2:]
		case b[0] == 0xfe && b[1] == 0xff:
			little = false
			b = b[2:]
		}
	}
	return decodeUTF16Bytes(b, little)
}

func decodeUTF16Bytes(b []byte, littleEndian bool) (string, bool) {
	if len(b)%2 != 0 {
		return "", false
	}
	units := make([]uint16, 0, len(b)/2)
	for i := 0; i < len(b); i += 2 {
		if littleEndian {
			units = append(units, uint16(b[i])|uint16(b[i+1])<<8)
		} else {
			units = append(units, uint16(b[i])<<8|uint16(b[i+1]))
		}
	}
	runes := utf16.Decode(units)
	for _, r := range runes {
		// utf16.Decode substitutes RuneError for unpaired surrogates.
		if r == utf8.RuneError {
			return "", false
		}
	}
	return string(runes), true
}
