// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package cursor navigates the syntax tree produced by jskip.Parse.
//
// A Cursor keeps the trail of nodes from its origin to its current position,
// so a caller can walk down into a tree, back up, and inspect the skips of
// the enclosing nodes along the way. Select resolves a JSON Pointer (RFC
// 6901) such as "/list/0/x" to the value it names.
package cursor

import (
	"errors"
	"fmt"

	"github.com/creachadair/jskip"
)

var (
	// ErrNotFound is reported when a key or index does not exist.
	ErrNotFound = errors.New("not found")

	// ErrWrongType is reported when a path step does not apply to the kind
	// of value under the cursor.
	ErrWrongType = errors.New("wrong type")
)

// A Node is a position in a syntax tree: either a jskip.Value or an object
// member (*jskip.Member).
type Node interface{ Skip() int }

// Path applies path to a new cursor at v and returns the resulting node,
// which must have type T. Path elements are as documented for Cursor.Down.
func Path[T Node](v jskip.Value, path ...any) (T, error) {
	var zero T
	c := New(v).Down(path...)
	if err := c.Err(); err != nil {
		return zero, err
	}
	out, ok := c.Node().(T)
	if !ok {
		return zero, fmt.Errorf("%w: node is %T", ErrWrongType, c.Node())
	}
	return out, nil
}

// A Cursor is a position in the tree rooted at its origin value.
type Cursor struct {
	origin jskip.Value
	trail  []Node // nodes below origin, outermost first
	err    error
}

// New returns a cursor positioned at origin.
func New(origin jskip.Value) *Cursor { return &Cursor{origin: origin} }

func (c *Cursor) Origin() jskip.Value { return c.origin }

// AtOrigin reports whether c is positioned at its origin.
func (c *Cursor) AtOrigin() bool { return len(c.trail) == 0 }

// Node returns the node at the current position of c.
func (c *Cursor) Node() Node {
	if n := len(c.trail); n > 0 {
		return c.trail[n-1]
	}
	return c.origin
}

// Path returns the nodes from the origin through the current position.
func (c *Cursor) Path() []Node { return append([]Node{c.origin}, c.trail...) }

// Err reports the error from the most recent Down or Pointer, or nil.
func (c *Cursor) Err() error { return c.err }

// Up moves c to the parent of its current position. At the origin, Up has
// no effect. It returns c to permit chaining.
func (c *Cursor) Up() *Cursor {
	if n := len(c.trail); n > 0 {
		c.trail = c.trail[:n-1]
	}
	return c
}

// Reset moves c back to its origin and clears its error.
func (c *Cursor) Reset() { c.trail = c.trail[:0]; c.err = nil }

// Down moves c along path from its current position. Each path element is
// one of:
//
//   - string: the first member of an object with that key. If more elements
//     follow, they apply to the value of the member.
//   - int: the element of an array, or the member of an object, at that
//     position. Negative positions count back from the end (-1 is last).
//   - func(jskip.Value) (jskip.Value, error): the result of calling the
//     function on the current value.
//   - nil: the value of the member at the current position. This is how a
//     path ends on a member value rather than the member.
//
// If a step fails, c stops at the last node it reached and Err reports the
// failure. It returns c to permit chaining.
func (c *Cursor) Down(path ...any) *Cursor {
	c.err = nil
	for i, elt := range path {
		next, err := step(c.value(), elt)
		if err != nil {
			c.err = fmt.Errorf("path element %d: %w", i, err)
			return c
		} else if next != nil {
			c.trail = append(c.trail, next)
		}
	}
	return c
}

// value returns the value at the current position, first moving from a
// member to its value if necessary.
func (c *Cursor) value() jskip.Value {
	switch t := c.Node().(type) {
	case *jskip.Member:
		c.trail = append(c.trail, t.Value)
		return t.Value
	case jskip.Value:
		return t
	case nil:
		return nil
	default:
		panic(fmt.Sprintf("unexpected node type %T", t))
	}
}

// step resolves a single path element relative to cur. A nil node with a nil
// error means the position does not change.
func step(cur jskip.Value, elt any) (Node, error) {
	switch t := elt.(type) {
	case nil:
		return nil, nil

	case string:
		o, ok := cur.(*jskip.Object)
		if !ok {
			return nil, fmt.Errorf("%w: key %q in %T", ErrWrongType, t, cur)
		}
		if m := o.Find(t); m != nil {
			return m, nil
		}
		return nil, fmt.Errorf("key %q %w", t, ErrNotFound)

	case int:
		switch v := cur.(type) {
		case *jskip.Array:
			if i, ok := position(len(v.Values), t); ok {
				return v.Values[i], nil
			}
			return nil, fmt.Errorf("array index %d (n=%d) %w", t, len(v.Values), ErrNotFound)
		case *jskip.Object:
			if i, ok := position(len(v.Members), t); ok {
				return v.Members[i], nil
			}
			return nil, fmt.Errorf("object index %d (n=%d) %w", t, len(v.Members), ErrNotFound)
		}
		return nil, fmt.Errorf("%w: index %d in %T", ErrWrongType, t, cur)

	case func(jskip.Value) (jskip.Value, error):
		return t(cur)
	}
	return nil, fmt.Errorf("invalid path element %T", elt)
}

// position maps a possibly-negative index onto [0, n).
func position(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}
