// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jskip

import "github.com/tailscale/hujson"

// DefaultMaxDepth is the nesting depth limit used when Options.MaxDepth is
// not positive.
const DefaultMaxDepth = 10000

// Options control the behavior of the parser. A zero value is ready for use
// and parses strict JSON.
type Options struct {
	// If true, input following the document value is ignored rather than
	// reported as an error. Whitespace after the value is always allowed.
	AllowTrailingInput bool

	// If true, accept JSON With Commas and Comments (JWCC): comments and
	// trailing commas are replaced by spaces before parsing, so offsets in
	// the tree and in errors refer to the input with those replacements.
	AllowJWCC bool

	// The maximum nesting depth of arrays and objects. If MaxDepth <= 0,
	// DefaultMaxDepth is used.
	MaxDepth int
}

// Parse parses text as a single JSON value using default options.
// In case of error, the concrete type of the error is [*SyntaxError].
func Parse(text string) (*Document, error) { return Options{}.Parse(text) }

// Parse parses text as a single JSON value using the settings from o.
// The text must be valid UTF-8: an invalid sequence inside a string is
// reported as InvalidCharacter, and elsewhere as UnexpectedCharacter.
// In case of error, the concrete type of the error is [*SyntaxError].
func (o Options) Parse(text string) (*Document, error) {
	if o.AllowJWCC {
		// If standardization fails, parse the input as given and let the scanner
		// report where it went wrong.
		if std, err := hujson.Standardize([]byte(text)); err == nil {
			text = string(std)
		}
	}
	s := &scanner{src: text, maxDepth: o.MaxDepth}
	if s.maxDepth <= 0 {
		s.maxDepth = DefaultMaxDepth
	}

	s.skipSpace()
	v, err := s.scanValue(noDelims)
	if err != nil {
		return nil, err
	}
	doc := &Document{skip: s.off, Value: v}
	if !o.AllowTrailingInput {
		s.skipSpace()
		if ch := s.peek(); ch != eof {
			return nil, s.failf(ExtraInput, "unexpected %q after value", ch)
		}
	}
	return doc, nil
}
