// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unquoting of JSON strings.
package escape

import (
	"unicode/utf16"

	"go4.org/mem"
)

// Single reports the character denoted by the single-character escape
// sequence "\" + c, and whether c is a valid single-character escape.
// The Unicode escape "\u" is not a single-character escape.
func Single(c rune) (rune, bool) {
	switch c {
	case '"', '\\', '/':
		return c, true
	case 'b':
		return '\b', true
	case 'f':
		return '\f', true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	}
	return 0, false
}

// ParseHex4 decodes exactly four hexadecimal digits from the front of data.
// It reports false if data is shorter than four bytes or any of the first four
// bytes is not a hex digit. Upper and lower case are both accepted.
func ParseHex4(data mem.RO) (rune, bool) {
	if data.Len() < 4 {
		return 0, false
	}
	var v rune
	for i := 0; i < 4; i++ {
		b := data.At(i)
		v <<= 4
		if '0' <= b && b <= '9' {
			v += rune(b - '0')
		} else if 'a' <= b && b <= 'f' {
			v += rune(b - 'a' + 10)
		} else if 'A' <= b && b <= 'F' {
			v += rune(b - 'A' + 10)
		} else {
			return 0, false
		}
	}
	return v, true
}

// LowSurrogate reports whether data begins with a "\uXXXX" escape for a
// low (trailing) UTF-16 surrogate, and if so returns its value.
func LowSurrogate(data mem.RO) (rune, bool) {
	if !mem.HasPrefix(data, mem.S(`\u`)) {
		return 0, false
	}
	r, ok := ParseHex4(data.SliceFrom(2))
	if !ok || r < 0xdc00 || r > 0xdfff {
		return 0, false
	}
	return r, true
}

// IsHighSurrogate reports whether r is a leading UTF-16 surrogate.
func IsHighSurrogate(r rune) bool { return r >= 0xd800 && r <= 0xdbff }

// IsSurrogate reports whether r is in the UTF-16 surrogate range.
func IsSurrogate(r rune) bool { return utf16.IsSurrogate(r) }

// Combine joins a surrogate pair into a single rune.
func Combine(hi, lo rune) rune { return utf16.DecodeRune(hi, lo) }
