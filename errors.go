// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jskip

import "fmt"

// ErrorKind classifies the reason a parse failed. An ErrorKind is itself an
// error, so a caller can check for a specific failure with errors.Is:
//
//	if errors.Is(err, jskip.LeadingZero) { ... }
type ErrorKind byte

// Constants defining the valid ErrorKind values.
const (
	Unknown                ErrorKind = iota // unclassified error
	ExpectedValue                           // a value is required but absent
	UnexpectedCharacter                     // a character no grammar rule accepts here
	UnterminatedString                      // end of input inside a string
	InvalidCharacter                        // unescaped control character in a string
	InvalidEscape                           // unknown \-escape in a string
	InvalidUnicodeEscape                    // malformed \uXXXX escape
	LeadingZero                             // redundant leading zero in a number
	IncompleteNumber                        // missing digits after sign, point, or exponent
	ExpectedStringKey                       // object member without a string key
	ExpectedDelimiter                       // missing ":", ",", "]" or "}"
	UnexpectedComma                         // trailing or stray comma
	UnterminatedCollection                  // end of input inside an array or object
	ExtraInput                              // non-space input after the document value
	TooDeep                                 // nesting exceeds the configured depth
)

var kindStr = [...]string{
	Unknown:                "unknown error",
	ExpectedValue:          "expected value",
	UnexpectedCharacter:    "unexpected character",
	UnterminatedString:     "unterminated string",
	InvalidCharacter:       "invalid character in string",
	InvalidEscape:          "invalid escape",
	InvalidUnicodeEscape:   "invalid Unicode escape",
	LeadingZero:            "leading zero",
	IncompleteNumber:       "incomplete number",
	ExpectedStringKey:      "expected string key",
	ExpectedDelimiter:      "expected delimiter",
	UnexpectedComma:        "unexpected comma",
	UnterminatedCollection: "unterminated collection",
	ExtraInput:             "extra input after value",
	TooDeep:                "nesting too deep",
}

func (k ErrorKind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Unknown]
	}
	return kindStr[v]
}

// Error satisfies the error interface.
func (k ErrorKind) Error() string { return k.String() }

// SyntaxError is the concrete type of errors reported by Parse.
type SyntaxError struct {
	Kind     ErrorKind // the classification of the failure
	Offset   int       // absolute character offset of the failure, 0-based
	Location LineCol   // line and column of the failure
	Message  string    // a human-readable description
}

// Error satisfies the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("at %s (offset %d): %s", e.Location, e.Offset, e.Message)
}

// Unwrap returns the Kind of e, so that errors.Is reports true for the kind
// of a syntax error.
func (e *SyntaxError) Unwrap() error { return e.Kind }
