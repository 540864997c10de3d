// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jskip

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/creachadair/jskip/internal/escape"
	"github.com/creachadair/mds/mstr"
	"go4.org/mem"
)

// delims is a set of characters that legally terminate a number in the
// current grammar context. The empty set means any character may follow.
type delims string

const (
	noDelims      delims = ""
	elementDelims delims = " \t\r\n,]"
	memberDelims  delims = " \t\r\n,}"
)

func (d delims) has(ch rune) bool { return d != "" && strings.ContainsRune(string(d), ch) }

// eof is the pseudo-character reported by peek at the end of the input.
const eof = -1

// A scanner is the shared cursor for a single call to Parse. Each construct
// is scanned by a method that consumes input from the cursor and reports how
// many characters it consumed.
type scanner struct {
	src string
	pos int // byte offset of the next unread character
	off int // character offset of the next unread character

	depth, maxDepth int
}

// peek returns the next unread character without consuming it, or eof.
func (s *scanner) peek() rune {
	if s.pos >= len(s.src) {
		return eof
	}
	if c := s.src[s.pos]; c < utf8.RuneSelf {
		return rune(c)
	}
	r, _ := utf8.DecodeRuneInString(s.src[s.pos:])
	return r
}

// next consumes one character and returns its encoding in the input.
func (s *scanner) next() string {
	n := 1
	if s.src[s.pos] >= utf8.RuneSelf {
		_, n = utf8.DecodeRuneInString(s.src[s.pos:])
	}
	text := s.src[s.pos : s.pos+n]
	s.pos += n
	s.off++
	return text
}

func (s *scanner) advance() { s.next() }

// validRune reports whether the next unread character is correctly encoded.
// It is only meaningful when peek has reported utf8.RuneError.
func (s *scanner) validRune() bool {
	_, n := utf8.DecodeRuneInString(s.src[s.pos:])
	return n > 1
}

// advanceASCII consumes n single-byte characters.
func (s *scanner) advanceASCII(n int) { s.pos += n; s.off += n }

// rest returns a view of the unread input.
func (s *scanner) rest() mem.RO { return mem.S(s.src[s.pos:]) }

func (s *scanner) skipSpace() {
	for isSpace(s.peek()) {
		s.pos++
		s.off++
	}
}

// push records entry into a nested array or object.
func (s *scanner) push() error {
	if s.depth >= s.maxDepth {
		return s.failf(TooDeep, "nesting depth exceeds %d", s.maxDepth)
	}
	s.depth++
	return nil
}

func (s *scanner) pop() { s.depth-- }

func (s *scanner) failf(kind ErrorKind, msg string, args ...any) error {
	return &SyntaxError{
		Kind:     kind,
		Offset:   s.off,
		Location: lineColAt(s.src, s.pos),
		Message:  fmt.Sprintf(msg, args...),
	}
}

// scanValue skips whitespace and scans a single value of any type. If the
// next significant character is in d, there is no value present.
func (s *scanner) scanValue(d delims) (Value, error) {
	start := s.off
	s.skipSpace()
	switch ch := s.peek(); {
	case ch == '[':
		return s.scanArray(start)
	case ch == '{':
		return s.scanObject(start)
	case ch == '"':
		return s.scanString(start)
	case ch == 't':
		if err := s.scanLiteral("true"); err != nil {
			return nil, err
		}
		return &Bool{skip: s.off - start, Value: true}, nil
	case ch == 'f':
		if err := s.scanLiteral("false"); err != nil {
			return nil, err
		}
		return &Bool{skip: s.off - start, Value: false}, nil
	case ch == 'n':
		if err := s.scanLiteral("null"); err != nil {
			return nil, err
		}
		return &Null{skip: s.off - start}, nil
	case ch == '-' || isDigit(ch):
		return s.scanNumber(start, d)
	case ch == eof:
		return nil, s.failf(ExpectedValue, "expected value, got end of input")
	case d.has(ch):
		return nil, s.failf(ExpectedValue, "expected value, got %q", ch)
	default:
		return nil, s.failf(UnexpectedCharacter, "unexpected %q looking for beginning of value", ch)
	}
}

// scanLiteral consumes the exact text of word, or reports an error.
func (s *scanner) scanLiteral(word string) error {
	if !mem.HasPrefix(s.rest(), mem.S(word)) {
		return s.failf(UnexpectedCharacter, "invalid literal %q, want %q", s.excerpt(), word)
	}
	s.advanceASCII(len(word))
	return nil
}

// excerpt returns a short prefix of the unread input for use in diagnostics.
func (s *scanner) excerpt() string {
	end := strings.IndexFunc(s.src[s.pos:], func(r rune) bool {
		return isSpace(r) || strings.ContainsRune(",:[]{}\"", r)
	})
	if end < 0 {
		end = len(s.src) - s.pos
	}
	return mstr.Trunc(s.src[s.pos:s.pos+end], 16)
}

type stringState byte

const (
	strOpen    stringState = iota // expect open quote
	strChar                       // in character
	strEscape                     // after \
	strUnicode                    // after \u
)

// scanString scans a quoted string and decodes its escapes. The skip of the
// result counts characters as written, from start through the closing quote.
func (s *scanner) scanString(start int) (*String, error) {
	var buf strings.Builder
	state := strOpen
	for {
		ch := s.peek()
		switch state {
		case strOpen:
			if isSpace(ch) {
				s.advance()
				continue
			} else if ch != '"' {
				return nil, s.failf(UnexpectedCharacter, "expected '\"', got %s", describe(ch))
			}
			s.advance()
			state = strChar

		case strChar:
			switch {
			case ch == eof:
				return nil, s.failf(UnterminatedString, "unterminated string")
			case ch == '"':
				s.advance()
				return &String{skip: s.off - start, Value: buf.String()}, nil
			case ch == '\\':
				s.advance()
				state = strEscape
			case ch < ' ':
				return nil, s.failf(InvalidCharacter, "unescaped control %q in string", ch)
			case ch == utf8.RuneError && !s.validRune():
				return nil, s.failf(InvalidCharacter, "invalid UTF-8 byte %#02x in string", s.src[s.pos])
			default:
				buf.WriteString(s.next())
			}

		case strEscape:
			if ch == eof {
				return nil, s.failf(UnterminatedString, "unterminated string")
			} else if ch == 'u' {
				s.advance()
				state = strUnicode
			} else if r, ok := escape.Single(ch); ok {
				s.advance()
				buf.WriteRune(r)
				state = strChar
			} else {
				return nil, s.failf(InvalidEscape, "invalid %q after escape", ch)
			}

		case strUnicode:
			r, ok := escape.ParseHex4(s.rest())
			if !ok {
				if s.rest().Len() < 4 {
					return nil, s.failf(InvalidUnicodeEscape, "incomplete Unicode escape")
				}
				return nil, s.failf(InvalidUnicodeEscape, "invalid hex digits %q", s.src[s.pos:s.pos+4])
			}
			if escape.IsHighSurrogate(r) {
				lo, ok := escape.LowSurrogate(s.rest().SliceFrom(4))
				if !ok {
					return nil, s.failf(InvalidUnicodeEscape, "unpaired surrogate \\u%04x", r)
				}
				r = escape.Combine(r, lo)
				s.advanceASCII(6)
			} else if escape.IsSurrogate(r) {
				return nil, s.failf(InvalidUnicodeEscape, "unpaired surrogate \\u%04x", r)
			}
			s.advanceASCII(4)
			buf.WriteRune(r)
			state = strChar
		}
	}
}

type numberState byte

const (
	numSign       numberState = iota // optional "-"
	numIntStart                      // first digit of the integer part
	numZero                          // after a leading "0"
	numIntDigits                     // remaining integer digits
	numFracStart                     // first digit after "."
	numFracDigits                    // remaining fraction digits
	numExpSign                       // optional exponent sign
	numExpStart                      // first exponent digit
	numExpDigits                     // remaining exponent digits
	numEnd
)

// scanNumber scans a number literal. The character following the number, if
// any, must be in d unless d is empty.
func (s *scanner) scanNumber(start int, d delims) (*Number, error) {
	s.skipSpace()
	first := s.pos
	state := numSign
	for state != numEnd {
		ch := s.peek()
		switch state {
		case numSign:
			if ch == '-' {
				s.advance()
			}
			state = numIntStart

		case numIntStart:
			if ch == '0' {
				s.advance()
				state = numZero
			} else if isDigit(ch) {
				s.advance()
				state = numIntDigits
			} else {
				return nil, s.failf(IncompleteNumber, "want digit, got %s", describe(ch))
			}

		case numZero:
			if isDigit(ch) {
				return nil, s.failf(LeadingZero, "extra leading zeroes")
			}
			state = s.afterInteger(ch)

		case numIntDigits:
			if isDigit(ch) {
				s.advance()
			} else {
				state = s.afterInteger(ch)
			}

		case numFracStart:
			if !isDigit(ch) {
				return nil, s.failf(IncompleteNumber, "no digits after decimal point")
			}
			s.advance()
			state = numFracDigits

		case numFracDigits:
			if isDigit(ch) {
				s.advance()
			} else if ch == 'e' || ch == 'E' {
				s.advance()
				state = numExpSign
			} else {
				state = numEnd
			}

		case numExpSign:
			if ch == '+' || ch == '-' {
				s.advance()
			}
			state = numExpStart

		case numExpStart:
			if !isDigit(ch) {
				return nil, s.failf(IncompleteNumber, "missing exponent digits")
			}
			s.advance()
			state = numExpDigits

		case numExpDigits:
			if isDigit(ch) {
				s.advance()
			} else {
				state = numEnd
			}
		}
	}
	// Punctuation that does not fit here is left for the enclosing collection
	// to report, so that [1} and [true} fail alike.
	if ch := s.peek(); ch != eof && d != noDelims && !d.has(ch) && !isPunct(ch) {
		return nil, s.failf(UnexpectedCharacter, "unexpected %q after number", ch)
	}
	return newNumber(s.off-start, s.src[first:s.pos]), nil
}

// afterInteger consumes the marker of a fraction or exponent following the
// integer part of a number, if there is one, and returns the next state.
func (s *scanner) afterInteger(ch rune) numberState {
	switch ch {
	case '.':
		s.advance()
		return numFracStart
	case 'e', 'E':
		s.advance()
		return numExpSign
	}
	return numEnd
}

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isDigit(ch rune) bool { return '0' <= ch && ch <= '9' }

// isPunct reports whether ch is a structural character of the grammar.
func isPunct(ch rune) bool {
	switch ch {
	case ',', ':', '[', ']', '{', '}':
		return true
	}
	return false
}

// describe renders ch for a diagnostic, naming the end of input.
func describe(ch rune) string {
	if ch == eof {
		return "end of input"
	}
	return fmt.Sprintf("%q", ch)
}
