// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package cursor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/creachadair/jskip"
)

var unescapeToken = strings.NewReplacer("~1", "/", "~0", "~")

// Pointer moves c along the JSON Pointer ptr (RFC 6901), starting from its
// current position. The empty pointer denotes the current value. Otherwise
// ptr is a sequence of "/"-prefixed reference tokens: against an object a
// token is a key, against an array it is a decimal index without leading
// zeroes. Within a token, "~1" denotes "/" and "~0" denotes "~".
//
// Unlike Down, Pointer always stops on a value, never on an object member.
// If ptr cannot be resolved, c stops at the last node it reached and Err
// reports the failure. It returns c to permit chaining.
func (c *Cursor) Pointer(ptr string) *Cursor {
	c.err = nil
	if ptr == "" {
		c.value()
		return c
	} else if !strings.HasPrefix(ptr, "/") {
		c.err = fmt.Errorf("invalid pointer %q: must be empty or begin with \"/\"", ptr)
		return c
	}
	for _, tok := range strings.Split(ptr[1:], "/") {
		tok = unescapeToken.Replace(tok)
		cur := c.value()
		var elt any = tok
		if _, ok := cur.(*jskip.Array); ok {
			i, err := parseIndex(tok)
			if err != nil {
				c.err = fmt.Errorf("pointer %q: %w", ptr, err)
				return c
			}
			elt = i
		}
		next, err := step(cur, elt)
		if err != nil {
			c.err = fmt.Errorf("pointer %q: %w", ptr, err)
			return c
		}
		c.trail = append(c.trail, next)
	}
	c.value()
	return c
}

// parseIndex parses an array index token. Signs and leading zeroes are not
// allowed, so every index has exactly one spelling.
func parseIndex(tok string) (int, error) {
	if tok == "" || (len(tok) > 1 && tok[0] == '0') || strings.TrimLeft(tok, "0123456789") != "" {
		return 0, fmt.Errorf("%w: invalid array index %q", ErrNotFound, tok)
	}
	i, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: array index %q: %v", ErrNotFound, tok, err)
	}
	return i, nil
}

// Select returns the value in the tree rooted at v named by the JSON Pointer
// ptr. See Cursor.Pointer for the syntax.
func Select(v jskip.Value, ptr string) (jskip.Value, error) {
	c := New(v).Pointer(ptr)
	if err := c.Err(); err != nil {
		return nil, err
	}
	return c.Node().(jskip.Value), nil
}
