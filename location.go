package jskip

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // character offset of column in line, 0-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// lineColAt reports the location of byte offset pos in src.
func lineColAt(src string, pos int) LineCol {
	head := src[:pos]
	line := strings.Count(head, "\n") + 1
	if i := strings.LastIndexByte(head, '\n'); i >= 0 {
		head = head[i+1:]
	}
	return LineCol{Line: line, Column: utf8.RuneCountInString(head)}
}
