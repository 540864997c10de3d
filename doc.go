// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package jskip implements a character-level JSON parser that records, for
// each syntactic construct, the number of characters it consumed.
//
// # Parsing
//
// Call Parse to parse a complete document held in memory:
//
//	doc, err := jskip.Parse(`{"a": [1, 2, 3]}`)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// The result is a *Document whose Value is the root of a tree of nodes with
// concrete types *Array, *Object, *String, *Number, *Bool, and *Null. Objects
// hold their members as a slice of *Member in input order; duplicate keys are
// preserved.
//
// # Skips
//
// Every node reports a Skip, the number of characters (not bytes) consumed by
// the scan that produced it, counted from the first character that scan
// examined. A skip is local: it is not an offset into the document, but the
// amount a caller adds to its own position after the node. For example, in
//
//	[ 1 , 2 ]
//
// the array has skip 9 and each element has skip 1, since the array absorbs
// the whitespace around its brackets and commas. The value of an object member
// absorbs the whitespace after its colon, so in {"a": 1} the number has skip
// 2. Numbers never absorb whitespace that follows them.
//
// # Errors
//
// A failed parse reports a *SyntaxError giving the character offset and
// line:column of the failure, and an ErrorKind classifying it. The ErrorKind
// constants are themselves errors, so a caller can write:
//
//	if errors.Is(err, jskip.UnexpectedComma) {
//	   log.Print("Trailing commas are not allowed")
//	}
//
// # Rendering
//
// Render produces an indented, deterministic debugging representation of a
// tree that shows the type and skip of each node:
//
//	Array (skip: 9) [
//	  Number (skip: 1) 1,
//	  Number (skip: 1) 2
//	]
//
// The Options type enables non-standard behaviors: ignoring trailing input
// after the document value, accepting JSON With Commas and Comments, and
// changing the nesting depth limit.
package jskip
