// Package testutil defines support code for unit tests.
package testutil

import (
	"fmt"

	"github.com/creachadair/jskip"
)

// Plain converts v into the plain Go value that a decoder such as
// encoding/json produces when unmarshaling into an empty interface:
// objects become map[string]any, arrays []any, numbers float64, strings
// string, Booleans bool, and null nil. When an object has duplicate keys,
// the last one wins.
func Plain(v jskip.Value) any {
	switch t := v.(type) {
	case *jskip.Array:
		out := make([]any, len(t.Values))
		for i, elt := range t.Values {
			out[i] = Plain(elt)
		}
		return out
	case *jskip.Object:
		out := make(map[string]any, len(t.Members))
		for _, m := range t.Members {
			out[m.Key] = Plain(m.Value)
		}
		return out
	case *jskip.String:
		return t.Value
	case *jskip.Number:
		return t.Float64()
	case *jskip.Bool:
		return t.Value
	case *jskip.Null:
		return nil
	default:
		panic(fmt.Sprintf("unknown value type %T", v))
	}
}
