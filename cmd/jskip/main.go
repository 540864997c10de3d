// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Program jskip parses a JSON document from standard input and prints a
// rendering of its syntax tree showing the skip of each node.
//
// Usage:
//
//	jskip [flags] < input.json
//	jskip -path /items/0 < input.json
//	jskip -http :8000
//
// With -path, only the value named by the given JSON Pointer is rendered.
// With -http, jskip instead serves the parser over HTTP at POST
// /api/v1/parse (see package github.com/creachadair/jskip/api).
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"unicode/utf8"

	"github.com/creachadair/jskip"
	"github.com/creachadair/jskip/api"
	"github.com/creachadair/jskip/cursor"
)

var (
	httpAddr   = flag.String("http", "", "Serve the parse API at this address instead of reading stdin")
	allowJWCC  = flag.Bool("jwcc", false, "Accept comments and trailing commas")
	allowTrail = flag.Bool("trailing", false, "Ignore input following the document value")
	maxDepth   = flag.Int("max-depth", jskip.DefaultMaxDepth, "Maximum nesting depth of arrays and objects")
	selectPath = flag.String("path", "", "Render only the value at this JSON Pointer (e.g., /items/0)")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] < input.json\n\nFlags:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	opts := jskip.Options{
		AllowJWCC:          *allowJWCC,
		AllowTrailingInput: *allowTrail,
		MaxDepth:           *maxDepth,
	}
	if *httpAddr != "" {
		log.Printf("Serving %s at http://%s", api.ParsePath, *httpAddr)
		log.Fatal(http.ListenAndServe(*httpAddr, api.Config{Options: opts}.Handler()))
	}
	if err := run(opts, *selectPath, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Parse error: %v\n", err)
		os.Exit(1)
	}
}

// run parses the document from r and writes to w the rendering of the value
// selected by the JSON Pointer ptr. An empty ptr selects the whole document.
func run(opts jskip.Options, ptr string, r io.Reader, w io.Writer) error {
	input, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	} else if !utf8.Valid(input) {
		return errors.New("input is not valid UTF-8")
	}
	doc, err := opts.Parse(string(input))
	if err != nil {
		return err
	}
	v, err := cursor.Select(doc.Value, ptr)
	if err != nil {
		return err
	}
	if err := jskip.Format(w, v); err != nil {
		return err
	}
	_, err = fmt.Fprintln(w)
	return err
}
