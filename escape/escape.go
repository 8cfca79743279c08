// Package escape implements the percent codec that keeps logical names
// storable on filesystems that forbid some of their characters.
package escape

import "strings"

const upperHex = "0123456789ABCDEF"

// Predicate reports whether a byte may not appear verbatim in a stored name.
type Predicate func(byte) bool

// Encode replaces every byte matched by incompatible with a three-character
// escape, '%' followed by two uppercase hex digits. All other bytes are kept
// in order. Literal '%' is only escaped when the predicate says so.
func Encode(name string, incompatible Predicate) string {
	var sb strings.Builder
	sb.Grow(len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		if incompatible(c) {
			sb.WriteByte('%')
			sb.WriteByte(upperHex[c>>4])
			sb.WriteByte(upperHex[c&0xf])
			continue
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

// Decode reverses Encode, accepting hex digits of either case. Escapes that
// decode to control bytes (< 0x20) stay escaped so decoded names remain
// printable. A '%' not followed by two hex digits is kept verbatim and
// scanning resumes after it, leaving the following characters untouched.
func Decode(name string) string {
	return decode(name, false)
}

// DecodeURL decodes every well-formed escape, control bytes included.
func DecodeURL(s string) string {
	return decode(s, true)
}

func decode(s string, controls bool) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); {
		c := s[i]
		if c == '%' && i+2 < len(s) {
			hi, hiOK := HexVal(s[i+1])
			lo, loOK := HexVal(s[i+2])
			if hiOK && loOK {
				if b := hi<<4 | lo; controls || b >= 0x20 {
					sb.WriteByte(b)
					i += 3
					continue
				}
			}
		}
		sb.WriteByte(c)
		i++
	}
	return sb.String()
}

// HexVal maps a hex digit to its value, accepting either letter case.
func HexVal(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
