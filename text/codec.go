package text

import (
	"unicode/utf16"

	"github.com/arloliu/textbuf/format"
	"golang.org/x/text/encoding/unicode"
)

// CompactLimit is the first code unit value that needs Wide storage.
const CompactLimit = 0x80

// IsCompact reports whether c can be stored in Compact mode.
func IsCompact(c uint16) bool {
	return c < CompactLimit
}

// AppendString appends the UTF-16 encoding of the UTF-8 string s to dst.
// Runes outside the BMP become surrogate pairs; invalid UTF-8 bytes become
// U+FFFD.
func AppendString(dst []uint16, s string) []uint16 {
	for _, r := range s {
		dst = utf16.AppendRune(dst, r)
	}

	return dst
}

// EncodeString returns the UTF-16 code units of s.
func EncodeString(s string) []uint16 {
	return AppendString(make([]uint16, 0, len(s)), s)
}

// DecodeWide converts Wide storage bytes to a UTF-8 string.
// Unpaired surrogates decode to U+FFFD.
func DecodeWide(b []byte) string {
	decoder := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	// The decoder substitutes U+FFFD for invalid units and never fails.
	out, _ := decoder.Bytes(b)

	return string(out)
}

// Decode converts storage bytes in the given coder to a UTF-8 string.
func Decode(b []byte, coder format.Coder) string {
	if coder == format.Compact {
		return string(b)
	}

	return DecodeWide(b)
}
