// Package encoding produces the byte encodings PDF expects for text
// string literals.
package encoding

import (
	"golang.org/x/text/encoding/unicode"
)

// IsASCII reports whether s contains only printable ASCII.
func IsASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return false
		}
	}
	return true
}

// UTF16Encode returns s as UTF-16BE bytes with a leading byte order
// mark, the encoding PDF viewers use to recognize Unicode text strings.
func UTF16Encode(s string) ([]byte, error) {
	enc := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder()
	return enc.Bytes([]byte(s))
}

// EscapeString wraps b in parentheses, backslash-escaping the three
// bytes that delimit PDF string literals.
func EscapeString(b []byte) []byte {
	out := make([]byte, 0, len(b)+2)
	out = append(out, '(')
	for _, c := range b {
		switch c {
		case '(', ')', '\\':
			out = append(out, '\\', c)
		default:
			out = append(out, c)
		}
	}
	return append(out, ')')
}
