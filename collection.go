// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jskip

type collectionState byte

const (
	expectOpen       collectionState = iota // "[" or "{"
	expectFirstOrEnd                        // first element or member, or the closer
	expectNext                              // an element or member after ","
	expectCommaOrEnd                        // "," or the closer
)

// scanArray scans an array and its elements. Whitespace around the brackets
// and commas is absorbed into the skip of the array.
func (s *scanner) scanArray(start int) (*Array, error) {
	var values []Value
	state := expectOpen
	for {
		s.skipSpace()
		ch := s.peek()
		switch state {
		case expectOpen:
			if ch != '[' {
				return nil, s.failf(UnexpectedCharacter, "expected '[', got %s", describe(ch))
			} else if err := s.push(); err != nil {
				return nil, err
			}
			defer s.pop()
			s.advance()
			state = expectFirstOrEnd

		case expectFirstOrEnd, expectNext:
			switch ch {
			case eof:
				return nil, s.failf(UnterminatedCollection, "unterminated array, want element or ']'")
			case ']':
				if state == expectNext {
					return nil, s.failf(UnexpectedComma, "trailing comma before ']'")
				}
				s.advance()
				return &Array{skip: s.off - start, Values: values}, nil
			case ',':
				return nil, s.failf(UnexpectedComma, "unexpected ',' where an array element is required")
			}
			v, err := s.scanValue(elementDelims)
			if err != nil {
				return nil, err
			}
			values = append(values, v)
			state = expectCommaOrEnd

		case expectCommaOrEnd:
			switch ch {
			case eof:
				return nil, s.failf(UnterminatedCollection, "unterminated array, want ',' or ']'")
			case ',':
				s.advance()
				state = expectNext
			case ']':
				s.advance()
				return &Array{skip: s.off - start, Values: values}, nil
			default:
				return nil, s.failf(ExpectedDelimiter, "expected ',' or ']', got %q", ch)
			}
		}
	}
}

// scanObject scans an object and its members. Whitespace around the braces
// and commas is absorbed into the skip of the object.
func (s *scanner) scanObject(start int) (*Object, error) {
	var members []*Member
	state := expectOpen
	for {
		s.skipSpace()
		ch := s.peek()
		switch state {
		case expectOpen:
			if ch != '{' {
				return nil, s.failf(UnexpectedCharacter, "expected '{', got %s", describe(ch))
			} else if err := s.push(); err != nil {
				return nil, err
			}
			defer s.pop()
			s.advance()
			state = expectFirstOrEnd

		case expectFirstOrEnd, expectNext:
			switch ch {
			case eof:
				return nil, s.failf(UnterminatedCollection, "unterminated object, want member or '}'")
			case '}':
				if state == expectNext {
					return nil, s.failf(UnexpectedComma, "trailing comma before '}'")
				}
				s.advance()
				return &Object{skip: s.off - start, Members: members}, nil
			case ',':
				return nil, s.failf(UnexpectedComma, "unexpected ',' where an object member is required")
			}
			m, err := s.scanMember()
			if err != nil {
				return nil, err
			}
			members = append(members, m)
			state = expectCommaOrEnd

		case expectCommaOrEnd:
			switch ch {
			case eof:
				return nil, s.failf(UnterminatedCollection, "unterminated object, want ',' or '}'")
			case ',':
				s.advance()
				state = expectNext
			case '}':
				s.advance()
				return &Object{skip: s.off - start, Members: members}, nil
			default:
				return nil, s.failf(ExpectedDelimiter, "expected ',' or '}', got %q", ch)
			}
		}
	}
}

type memberState byte

const (
	expectKey   memberState = iota // quoted key
	expectColon                    // ":"
	expectValue                    // any value
)

// scanMember scans a single "key": value pair. The whitespace following the
// colon is absorbed into the skip of the value.
func (s *scanner) scanMember() (*Member, error) {
	start := s.off
	var key string
	state := expectKey
	for {
		switch state {
		case expectKey:
			s.skipSpace()
			if ch := s.peek(); ch != '"' {
				return nil, s.failf(ExpectedStringKey, "expected string key, got %s", describe(ch))
			}
			k, err := s.scanString(s.off)
			if err != nil {
				return nil, err
			}
			key = k.Value
			state = expectColon

		case expectColon:
			s.skipSpace()
			switch ch := s.peek(); ch {
			case ':':
				s.advance()
				state = expectValue
			case eof:
				return nil, s.failf(UnterminatedCollection, "unterminated object, want ':'")
			default:
				return nil, s.failf(ExpectedDelimiter, "expected ':' after key, got %q", ch)
			}

		case expectValue:
			v, err := s.scanValue(memberDelims)
			if err != nil {
				return nil, err
			}
			return &Member{skip: s.off - start, Key: key, Value: v}, nil
		}
	}
}
