// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jskip

import (
	"fmt"
	"strconv"
)

// A Value is a node of a parsed JSON syntax tree.
// The concrete type is one of *Array, *Object, *String, *Number, *Bool, or
// *Null.
type Value interface {
	// Skip reports the number of characters consumed by the scan that
	// produced the value, counted from the first character that scan
	// examined. This may include whitespace skipped before the value.
	Skip() int

	isValue()
}

// A Document is the result of parsing a complete input.
type Document struct {
	skip int

	// The root value of the document.
	Value Value
}

// Skip reports the number of characters consumed from the start of the input,
// including leading whitespace, up to the end of the root value.
func (d *Document) Skip() int { return d.skip }

// An Array is an ordered sequence of values.
type Array struct {
	skip   int
	Values []Value
}

// Len reports the number of elements in a.
func (a *Array) Len() int { return len(a.Values) }

func (a *Array) Skip() int { return a.skip }

func (a *Array) String() string { return fmt.Sprintf("Array(len=%d)", len(a.Values)) }

// An Object is an ordered collection of key-value members. Keys need not be
// unique; members are kept in the order they occur in the input.
type Object struct {
	skip    int
	Members []*Member
}

// Len reports the number of members in o.
func (o *Object) Len() int { return len(o.Members) }

func (o *Object) Skip() int { return o.skip }

// Find returns the first member of o with the given key, or nil.
func (o *Object) Find(key string) *Member {
	for _, m := range o.Members {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// FindLast returns the last member of o with the given key, or nil.
// This is the member a last-write-wins decoder would keep.
func (o *Object) FindLast(key string) *Member {
	for i := len(o.Members) - 1; i >= 0; i-- {
		if m := o.Members[i]; m.Key == key {
			return m
		}
	}
	return nil
}

func (o *Object) String() string { return fmt.Sprintf("Object(len=%d)", len(o.Members)) }

// A Member is a single key-value pair belonging to an Object.
// A Member is not itself a Value.
type Member struct {
	skip  int
	Key   string // the decoded key
	Value Value
}

// Skip reports the number of characters consumed by the member, from its key
// through the end of its value.
func (m *Member) Skip() int { return m.skip }

func (m *Member) String() string { return fmt.Sprintf("Member(key=%q)", m.Key) }

// A String is a string value with its escapes decoded.
type String struct {
	skip  int
	Value string
}

func (s *String) Skip() int { return s.skip }

// A Number is a numeric value. It retains the text of the number as written
// in the input along with its floating-point value.
type Number struct {
	skip  int
	Text  string
	value float64
}

func (n *Number) Skip() int { return n.skip }

// Float64 returns the floating-point value of n. Values outside the range of
// a float64 are reported as positive or negative infinity.
func (n *Number) Float64() float64 { return n.value }

// IsInt reports whether n is written without a fraction or exponent.
func (n *Number) IsInt() bool {
	for i := 0; i < len(n.Text); i++ {
		switch n.Text[i] {
		case '.', 'e', 'E':
			return false
		}
	}
	return true
}

// newNumber constructs a Number from the text of a lexically valid number.
func newNumber(skip int, text string) *Number {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil && !isRangeError(err) {
		panic(fmt.Sprintf("invalid number text %q: %v", text, err))
	}
	return &Number{skip: skip, Text: text, value: v}
}

func isRangeError(err error) bool {
	ne, ok := err.(*strconv.NumError)
	return ok && ne.Err == strconv.ErrRange
}

// A Bool is a Boolean constant, true or false.
type Bool struct {
	skip  int
	Value bool
}

func (b *Bool) Skip() int { return b.skip }

// Null represents the null constant.
type Null struct{ skip int }

func (n *Null) Skip() int { return n.skip }

func (*Array) isValue()  {}
func (*Object) isValue() {}
func (*String) isValue() {}
func (*Number) isValue() {}
func (*Bool) isValue()   {}
func (*Null) isValue()   {}
