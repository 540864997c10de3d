// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jskip

import (
	"fmt"
	"io"
	"strings"
)

// Render returns a human-readable rendering of v showing the type and skip
// of each node, nested with two spaces per level. The first line is not
// indented; the lines that follow are indented as if v itself were at the
// given indent level.
//
// The output is a debugging aid, not JSON. Strings and keys are quoted and
// escaped so that every scalar occupies a single line.
func Render(v Value, indent int) string {
	var sb strings.Builder
	renderValue(&sb, v, indent)
	return sb.String()
}

// Format writes the rendering of v at indent level 0 to w.
func Format(w io.Writer, v Value) error {
	_, err := io.WriteString(w, Render(v, 0))
	return err
}

func renderValue(sb *strings.Builder, v Value, indent int) {
	pad := strings.Repeat("  ", indent)
	switch t := v.(type) {
	case *Array:
		fmt.Fprintf(sb, "Array (skip: %d) [", t.skip)
		if len(t.Values) == 0 {
			sb.WriteString("]")
			return
		}
		sb.WriteString("\n")
		for i, elt := range t.Values {
			sb.WriteString(pad + "  ")
			renderValue(sb, elt, indent+1)
			if i < len(t.Values)-1 {
				sb.WriteByte(',')
			}
			sb.WriteByte('\n')
		}
		sb.WriteString(pad + "]")

	case *Object:
		fmt.Fprintf(sb, "Object (skip: %d) {", t.skip)
		if len(t.Members) == 0 {
			sb.WriteString("}")
			return
		}
		sb.WriteString("\n")
		for i, m := range t.Members {
			fmt.Fprintf(sb, "%s  %s (skip: %d): ", pad, Quote(m.Key), m.skip)
			renderValue(sb, m.Value, indent+1)
			if i < len(t.Members)-1 {
				sb.WriteByte(',')
			}
			sb.WriteByte('\n')
		}
		sb.WriteString(pad + "}")

	case *String:
		fmt.Fprintf(sb, "String (skip: %d) %s", t.skip, Quote(t.Value))
	case *Number:
		fmt.Fprintf(sb, "Number (skip: %d) %s", t.skip, t.Text)
	case *Bool:
		fmt.Fprintf(sb, "Bool (skip: %d) %t", t.skip, t.Value)
	case *Null:
		fmt.Fprintf(sb, "Null (skip: %d)", t.skip)
	default:
		panic(fmt.Sprintf("unknown value type %T", v))
	}
}
