// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jskip

import "github.com/creachadair/jskip/internal/escape"

// Quote encodes s as a JSON string literal. The contents are escaped and
// double quotation marks are added. Invalid UTF-8 is replaced by U+FFFD.
func Quote(s string) string { return escape.Quote(s) }

// Unquote decodes a single JSON string literal, including its enclosing
// double quotation marks, and returns its contents with escapes replaced.
// Surrounding whitespace is not permitted. In case of error, the concrete
// type of the error is [*SyntaxError].
func Unquote(src string) (string, error) {
	s := &scanner{src: src}
	if ch := s.peek(); ch != '"' {
		return "", s.failf(UnexpectedCharacter, "expected '\"', got %s", describe(ch))
	}
	str, err := s.scanString(0)
	if err != nil {
		return "", err
	}
	if ch := s.peek(); ch != eof {
		return "", s.failf(ExtraInput, "unexpected %q after string", ch)
	}
	return str.Value, nil
}
