// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jskip_test

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/creachadair/jskip"
	"github.com/creachadair/jskip/internal/testutil"
	"github.com/google/go-cmp/cmp"
	"github.com/intel-go/fastjson"
	"golang.org/x/sync/errgroup"
)

func mustParse(t *testing.T, input string) *jskip.Document {
	t.Helper()
	doc, err := jskip.Parse(input)
	if err != nil {
		t.Fatalf("Parse %#q: unexpected error: %v", input, err)
	}
	return doc
}

func TestParseSkips(t *testing.T) {
	tests := []struct {
		input   string
		docSkip int
		want    string // rendering of the root
	}{
		// Constants
		{"true", 4, "Bool (skip: 4) true"},
		{"false", 5, "Bool (skip: 5) false"},
		{"null", 4, "Null (skip: 4)"},
		{"  null\n", 6, "Null (skip: 4)"},

		// Numbers
		{"0", 1, "Number (skip: 1) 0"},
		{"-0", 2, "Number (skip: 2) -0"},
		{"0.5", 3, "Number (skip: 3) 0.5"},
		{"-1", 2, "Number (skip: 2) -1"},
		{" 1.2e3 ", 6, "Number (skip: 5) 1.2e3"},
		{"6.02E+23", 8, "Number (skip: 8) 6.02E+23"},
		{"1e-0", 4, "Number (skip: 4) 1e-0"},

		// Strings
		{`""`, 2, `String (skip: 2) ""`},
		{` "" `, 3, `String (skip: 2) ""`},
		{`"Hello, world!"`, 15, `String (skip: 15) "Hello, world!"`},
		{`"\""`, 4, `String (skip: 4) "\""`},
		{`"\u0041"`, 8, `String (skip: 8) "A"`},
		{`"a\nb"`, 6, `String (skip: 6) "a\nb"`},
		{`"é"`, 3, `String (skip: 3) "é"`},
		{`"\ud83d\ude00"`, 14, `String (skip: 14) "😀"`},

		// Arrays
		{"[]", 2, "Array (skip: 2) []"},
		{" [ ] ", 4, "Array (skip: 3) []"},
		{"[[]]", 4, "Array (skip: 4) [\n  Array (skip: 2) []\n]"},
		{"[1,2]", 5, "Array (skip: 5) [\n  Number (skip: 1) 1,\n  Number (skip: 1) 2\n]"},
		{" [ 1 , 2 ] ", 10, "Array (skip: 9) [\n  Number (skip: 1) 1,\n  Number (skip: 1) 2\n]"},

		// Objects
		{"{}", 2, "Object (skip: 2) {}"},
		{" { } ", 4, "Object (skip: 3) {}"},
		{`{"a": 1}`, 8, "Object (skip: 8) {\n  \"a\" (skip: 6): Number (skip: 2) 1\n}"},
		{`{ "a" : 1 }`, 11, "Object (skip: 11) {\n  \"a\" (skip: 7): Number (skip: 2) 1\n}"},

		// Nesting
		{`[1, {"a": "x"}]`, 15, `Array (skip: 15) [
  Number (skip: 1) 1,
  Object (skip: 10) {
    "a" (skip: 8): String (skip: 4) "x"
  }
]`},
	}
	for _, test := range tests {
		doc := mustParse(t, test.input)
		if got := doc.Skip(); got != test.docSkip {
			t.Errorf("Parse %#q: document skip is %d, want %d", test.input, got, test.docSkip)
		}
		if diff := cmp.Diff(test.want, jskip.Render(doc.Value, 0)); diff != "" {
			t.Errorf("Parse %#q: rendering (-want, +got):\n%s", test.input, diff)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input  string
		kind   jskip.ErrorKind
		offset int
	}{
		{"", jskip.ExpectedValue, 0},
		{"   ", jskip.ExpectedValue, 3},

		// Literals and stray characters
		{"nul", jskip.UnexpectedCharacter, 0},
		{"tru", jskip.UnexpectedCharacter, 0},
		{"nil", jskip.UnexpectedCharacter, 0},
		{"x", jskip.UnexpectedCharacter, 0},
		{"]", jskip.UnexpectedCharacter, 0},
		{"+1", jskip.UnexpectedCharacter, 0},
		{"[}", jskip.UnexpectedCharacter, 1},
		{"[1x]", jskip.UnexpectedCharacter, 2},

		// Numbers
		{"012", jskip.LeadingZero, 1},
		{"-01", jskip.LeadingZero, 2},
		{"[00]", jskip.LeadingZero, 2},
		{"2.", jskip.IncompleteNumber, 2},
		{"[2.]", jskip.IncompleteNumber, 3},
		{"-", jskip.IncompleteNumber, 1},
		{"-x", jskip.IncompleteNumber, 1},
		{"1e", jskip.IncompleteNumber, 2},
		{"1e+", jskip.IncompleteNumber, 3},
		{"1.5E-x", jskip.IncompleteNumber, 5},

		// Strings
		{`"abc`, jskip.UnterminatedString, 4},
		{`"abc\`, jskip.UnterminatedString, 5},
		{"\"a\nb\"", jskip.InvalidCharacter, 2},
		{"\"a\rb\"", jskip.InvalidCharacter, 2},
		{"\"a\tb\"", jskip.InvalidCharacter, 2},
		{`"\q"`, jskip.InvalidEscape, 2},
		{`"\u"`, jskip.InvalidUnicodeEscape, 3},
		{`"\u00"`, jskip.InvalidUnicodeEscape, 3},
		{`"\u00x9"`, jskip.InvalidUnicodeEscape, 3},
		{`"\ud800"`, jskip.InvalidUnicodeEscape, 3},
		{`"\ud800A"`, jskip.InvalidUnicodeEscape, 3},
		{`"\udc00"`, jskip.InvalidUnicodeEscape, 3},

		// Arrays
		{"[", jskip.UnterminatedCollection, 1},
		{"[1", jskip.UnterminatedCollection, 2},
		{"[1,", jskip.UnterminatedCollection, 3},
		{"[1 2]", jskip.ExpectedDelimiter, 3},
		{"[1}", jskip.ExpectedDelimiter, 2},
		{"[true}", jskip.ExpectedDelimiter, 5},
		{"[-0.5e3}", jskip.ExpectedDelimiter, 7},
		{"[1:2]", jskip.ExpectedDelimiter, 2},
		{"[1[]]", jskip.ExpectedDelimiter, 2},
		{"[1,]", jskip.UnexpectedComma, 3},
		{"[,1]", jskip.UnexpectedComma, 1},
		{"[1,,2]", jskip.UnexpectedComma, 3},

		// Objects
		{"{", jskip.UnterminatedCollection, 1},
		{`{"a"`, jskip.UnterminatedCollection, 4},
		{`{"a":1`, jskip.UnterminatedCollection, 6},
		{`{"a":}`, jskip.ExpectedValue, 5},
		{`{"a":,"b":1}`, jskip.ExpectedValue, 5},
		{`{"a" 1}`, jskip.ExpectedDelimiter, 5},
		{`{"a":1 "b":2}`, jskip.ExpectedDelimiter, 7},
		{`{1:2}`, jskip.ExpectedStringKey, 1},
		{`{"a":1,}`, jskip.UnexpectedComma, 7},
		{`{,}`, jskip.UnexpectedComma, 1},
		{`{"a":1,,"b":2}`, jskip.UnexpectedComma, 7},
		{`{"a":1]`, jskip.ExpectedDelimiter, 6},
		{`{"a":true]`, jskip.ExpectedDelimiter, 9},
		{`{"a":1:2}`, jskip.ExpectedDelimiter, 6},
		{`{"a":1x}`, jskip.UnexpectedCharacter, 6},

		// Trailing input
		{"true false", jskip.ExtraInput, 5},
		{"true)))", jskip.ExtraInput, 4},
		{"1x", jskip.ExtraInput, 1},
		{"[] []", jskip.ExtraInput, 3},

		// Invalid UTF-8
		{"\"a\xffb\"", jskip.InvalidCharacter, 2},
		{"[\"\xc3\"]", jskip.InvalidCharacter, 2},
		{"[\xff]", jskip.UnexpectedCharacter, 1},

		// Offsets count characters, not bytes.
		{`["é", x]`, jskip.UnexpectedCharacter, 6},
	}
	for _, test := range tests {
		doc, err := jskip.Parse(test.input)
		if err == nil {
			t.Errorf("Parse %#q: got %s, want error", test.input, jskip.Render(doc.Value, 0))
			continue
		}
		var serr *jskip.SyntaxError
		if !errors.As(err, &serr) {
			t.Errorf("Parse %#q: got error %[2]v of type %[2]T, want *SyntaxError", test.input, err)
			continue
		}
		if !errors.Is(err, test.kind) {
			t.Errorf("Parse %#q: got kind %v, want %v (%v)", test.input, serr.Kind, test.kind, err)
		}
		if serr.Offset != test.offset {
			t.Errorf("Parse %#q: got offset %d, want %d (%v)", test.input, serr.Offset, test.offset, err)
		}
	}
}

func TestErrorLocation(t *testing.T) {
	_, err := jskip.Parse("[\n  1,\n  x]")
	var serr *jskip.SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("Parse: got error %v, want *SyntaxError", err)
	}
	if want := (jskip.LineCol{Line: 3, Column: 2}); serr.Location != want {
		t.Errorf("Location: got %v, want %v", serr.Location, want)
	}
	const want = `at 3:2 (offset 9): unexpected 'x' looking for beginning of value`
	if got := err.Error(); got != want {
		t.Errorf("Error: got %q, want %q", got, want)
	}
	if errors.Is(err, jskip.ExpectedValue) {
		t.Errorf("Error %v should not match %v", err, jskip.ExpectedValue)
	}
	if got := errors.Unwrap(err); got != jskip.UnexpectedCharacter {
		t.Errorf("Unwrap: got %v, want %v", got, jskip.UnexpectedCharacter)
	}
}

func TestErrorKindString(t *testing.T) {
	for _, k := range []jskip.ErrorKind{jskip.Unknown, jskip.LeadingZero, jskip.TooDeep} {
		if k.String() == "" || k.Error() != k.String() {
			t.Errorf("Kind %d: bad string %q / %q", k, k.String(), k.Error())
		}
	}
	if got, want := jskip.ErrorKind(200).String(), jskip.Unknown.String(); got != want {
		t.Errorf("Out of range kind: got %q, want %q", got, want)
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		input string
		value float64
		isInt bool
	}{
		{"0", 0, true},
		{"-0", math.Copysign(0, -1), true},
		{"0.5", 0.5, false},
		{"15", 15, true},
		{"-25", -25, true},
		{"1.2e3", 1200, false},
		{"-0.001E-100", -0.001e-100, false},
		{"1e400", math.Inf(1), false},
		{"-1e400", math.Inf(-1), false},
	}
	for _, test := range tests {
		doc := mustParse(t, test.input)
		n, ok := doc.Value.(*jskip.Number)
		if !ok {
			t.Errorf("Parse %#q: got %T, want *Number", test.input, doc.Value)
			continue
		}
		if n.Text != test.input {
			t.Errorf("Parse %#q: text is %q", test.input, n.Text)
		}
		if got := n.Float64(); got != test.value || math.Signbit(got) != math.Signbit(test.value) {
			t.Errorf("Parse %#q: value is %v, want %v", test.input, got, test.value)
		}
		if got := n.IsInt(); got != test.isInt {
			t.Errorf("Parse %#q: IsInt is %v, want %v", test.input, got, test.isInt)
		}
	}
}

func TestStrings(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{`"\u0041"`, "A"},
		{`"a\nb"`, "a\nb"},
		{`"\"\\\/\b\f\n\r\t"`, "\"\\/\b\f\n\r\t"},
		{`"é\u00e9"`, "éé"},
		{`"a \u0026 b"`, "a & b"},
		{`"\uD83D\uDE00!"`, "😀!"},
		{`"🚀 launch"`, "🚀 launch"},
	}
	for _, test := range tests {
		doc := mustParse(t, test.input)
		s, ok := doc.Value.(*jskip.String)
		if !ok {
			t.Errorf("Parse %#q: got %T, want *String", test.input, doc.Value)
		} else if s.Value != test.want {
			t.Errorf("Parse %#q: got %q, want %q", test.input, s.Value, test.want)
		}
	}
}

func TestNestedComposite(t *testing.T) {
	doc := mustParse(t, `{"arr":[null,true,false,0,"s",{}]}`)
	obj, ok := doc.Value.(*jskip.Object)
	if !ok {
		t.Fatalf("Root is %T, not *Object", doc.Value)
	}
	m := obj.Find("arr")
	if m == nil {
		t.Fatal(`Key "arr" not found`)
	}
	arr, ok := m.Value.(*jskip.Array)
	if !ok {
		t.Fatalf("Member value is %T, not *Array", m.Value)
	}
	var got []string
	for _, v := range arr.Values {
		got = append(got, fmt.Sprintf("%T", v))
	}
	want := []string{
		"*jskip.Null", "*jskip.Bool", "*jskip.Bool", "*jskip.Number", "*jskip.String", "*jskip.Object",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Element types (-want, +got):\n%s", diff)
	}
	if b := arr.Values[1].(*jskip.Bool); !b.Value {
		t.Error("Element 1 is false, want true")
	}
	if b := arr.Values[2].(*jskip.Bool); b.Value {
		t.Error("Element 2 is true, want false")
	}
}

func TestDuplicateKeys(t *testing.T) {
	doc := mustParse(t, `{"a":1,"a":2}`)
	obj := doc.Value.(*jskip.Object)
	if obj.Len() != 2 {
		t.Fatalf("Object has %d members, want 2", obj.Len())
	}
	for i, m := range obj.Members {
		if m.Key != "a" {
			t.Errorf("Member %d: key is %q, want %q", i, m.Key, "a")
		}
	}
	if got := obj.Find("a").Value.(*jskip.Number).Text; got != "1" {
		t.Errorf("Find: got %s, want 1", got)
	}
	if got := obj.FindLast("a").Value.(*jskip.Number).Text; got != "2" {
		t.Errorf("FindLast: got %s, want 2", got)
	}
	if obj.Find("b") != nil || obj.FindLast("b") != nil {
		t.Error("Find: found a nonexistent key")
	}
}

func TestWhitespaceInsensitive(t *testing.T) {
	tests := [][]string{
		{"[1,2]", " [ 1 , 2 ] ", "\n[\n\t1,\r\n\t2\n]\n"},
		{`{"a":[true,null]}`, ` { "a" : [ true , null ] } `},
	}
	for _, group := range tests {
		want := testutil.Plain(mustParse(t, group[0]).Value)
		for _, input := range group[1:] {
			got := testutil.Plain(mustParse(t, input).Value)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Parse %#q (-want, +got):\n%s", input, diff)
			}
		}
	}
}

// TestCompare checks the structure of parsed values against a conventional
// JSON decoder.
func TestCompare(t *testing.T) {
	inputs := []string{
		`null`, `true`, `false`, `0`, `-0.25`, `1e10`, `""`, `"a\tb c"`,
		`[]`, `{}`, `[[[]]]`, `[1,"two",3.5,false,null]`,
		`{"name":"Dennis","age":37,"isOld":false}`,
		`{"values":[5,10,true],"page":{"token":"xyz-pdq-zvm","count":100}}`,
		`{"a":1,"a":{"b":[]}}`,
		`  {"list":[{"x":1},{"x":2}],"y":{"hello":"there"}}  `,
	}
	for _, input := range inputs {
		var want any
		if err := fastjson.NewDecoder(strings.NewReader(input)).Decode(&want); err != nil {
			t.Fatalf("Decode %#q: %v", input, err)
		}
		got := testutil.Plain(mustParse(t, input).Value)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Parse %#q (-want, +got):\n%s", input, diff)
		}
	}
}

func TestOptions(t *testing.T) {
	t.Run("AllowTrailingInput", func(t *testing.T) {
		opts := jskip.Options{AllowTrailingInput: true}
		for _, tc := range []struct {
			input string
			skip  int
		}{
			{"true garbage", 4},
			{"true)))", 4},
			{" 1x", 2},
			{"[] []", 2},
		} {
			doc, err := opts.Parse(tc.input)
			if err != nil {
				t.Errorf("Parse %#q: unexpected error: %v", tc.input, err)
			} else if got := doc.Skip(); got != tc.skip {
				t.Errorf("Parse %#q: skip is %d, want %d", tc.input, got, tc.skip)
			}
		}
	})

	t.Run("AllowJWCC", func(t *testing.T) {
		opts := jskip.Options{AllowJWCC: true}
		doc, err := opts.Parse("[1, /* two */ 2,]")
		if err != nil {
			t.Fatalf("Parse: unexpected error: %v", err)
		}
		const want = "Array (skip: 17) [\n  Number (skip: 1) 1,\n  Number (skip: 1) 2\n]"
		if diff := cmp.Diff(want, jskip.Render(doc.Value, 0)); diff != "" {
			t.Errorf("Rendering (-want, +got):\n%s", diff)
		}

		doc, err = opts.Parse("// leading\n{\"a\": true, // why not\n}\n")
		if err != nil {
			t.Fatalf("Parse: unexpected error: %v", err)
		}
		if m := doc.Value.(*jskip.Object).Find("a"); m == nil {
			t.Error(`Key "a" not found`)
		}

		// Invalid input is still diagnosed by the parser.
		if _, err := opts.Parse("[1,,]"); !errors.Is(err, jskip.UnexpectedComma) {
			t.Errorf("Parse: got error %v, want %v", err, jskip.UnexpectedComma)
		}

		// Without the option, comments are rejected.
		if _, err := jskip.Parse("[1, /* two */ 2]"); !errors.Is(err, jskip.UnexpectedCharacter) {
			t.Errorf("Parse: got error %v, want %v", err, jskip.UnexpectedCharacter)
		}
	})

	t.Run("MaxDepth", func(t *testing.T) {
		opts := jskip.Options{MaxDepth: 3}
		if _, err := opts.Parse(`[{"a":[]}]`); err != nil {
			t.Errorf("Parse at depth 3: unexpected error: %v", err)
		}
		_, err := opts.Parse(`[{"a":[[]]}]`)
		var serr *jskip.SyntaxError
		if !errors.As(err, &serr) || serr.Kind != jskip.TooDeep {
			t.Fatalf("Parse at depth 4: got error %v, want %v", err, jskip.TooDeep)
		}
		if serr.Offset != 7 {
			t.Errorf("Parse at depth 4: offset is %d, want 7", serr.Offset)
		}

		deep := strings.Repeat("[", jskip.DefaultMaxDepth+1) + strings.Repeat("]", jskip.DefaultMaxDepth+1)
		if _, err := jskip.Parse(deep); !errors.Is(err, jskip.TooDeep) {
			t.Errorf("Parse past default depth: got error %v, want %v", err, jskip.TooDeep)
		}
	})
}

func TestConcurrentParse(t *testing.T) {
	const input = `{"list":[{"x":1},{"x":2}],"y":{"hello":"there"},"z":[true,false,null,-1.5e3]}`
	want := jskip.Render(mustParse(t, input).Value, 0)

	var g errgroup.Group
	for i := 0; i < 32; i++ {
		g.Go(func() error {
			doc, err := jskip.Parse(input)
			if err != nil {
				return err
			} else if got := jskip.Render(doc.Value, 0); got != want {
				return fmt.Errorf("got rendering %q, want %q", got, want)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("Concurrent parse: %v", err)
	}
}
