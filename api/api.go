// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package api implements an HTTP interface to the jskip parser.
//
// The interface has a single endpoint:
//
//	POST /api/v1/parse
//
// The request body must have content type text/plain and contain a UTF-8
// JSON document. On success, the response is 200 OK with a text/plain body
// containing the rendering of the document (see jskip.Render). Otherwise the
// response has an application/json body of the form
//
//	{"code": 400, "message": "description of the problem"}
//
// where code repeats the HTTP status.
//
// The optional query parameter "path" is a JSON Pointer (RFC 6901). When it
// is set, only the value it names is rendered; if the document has no such
// value the response is 404 Not Found.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"unicode/utf8"

	"github.com/creachadair/jskip"
	"github.com/creachadair/jskip/cursor"
)

// ParsePath is the request path of the parse endpoint.
const ParsePath = "/api/v1/parse"

// DefaultMaxBodyBytes is the request size limit used when
// Config.MaxBodyBytes is not positive.
const DefaultMaxBodyBytes = 16 << 20

// Config carries the settings for an API handler.
// A zero value is ready for use with default settings.
type Config struct {
	// Options passed to the parser for each request.
	Options jskip.Options

	// The maximum accepted request body size in bytes.
	MaxBodyBytes int64
}

// Handler returns an http.Handler that serves the parse endpoint with
// default settings.
func Handler() http.Handler { return Config{}.Handler() }

// Handler returns an http.Handler that serves the parse endpoint using the
// settings from c. Requests for the endpoint with a method other than POST
// are rejected with 405 Method Not Allowed.
func (c Config) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST "+ParsePath, c.parse)
	return mux
}

func (c Config) parse(w http.ResponseWriter, r *http.Request) {
	if mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type")); err != nil || mt != "text/plain" {
		writeError(w, http.StatusUnsupportedMediaType, "Unsupported Media Type")
		return
	}

	limit := c.MaxBodyBytes
	if limit <= 0 {
		limit = DefaultMaxBodyBytes
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
	if err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("Request body exceeds %d bytes", mbe.Limit))
		} else {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("Reading request body: %v", err))
		}
		return
	}
	if !utf8.Valid(body) {
		writeError(w, http.StatusBadRequest, "Invalid UTF-8: "+invalidUTF8(body))
		return
	}

	doc, err := c.Options.Parse(string(body))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	v, err := cursor.Select(doc.Value, r.URL.Query().Get("path"))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	jskip.Format(w, v)
}

// An errorReply is the JSON body of an unsuccessful response.
type errorReply struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, code int, msg string) {
	data, err := json.Marshal(errorReply{Code: code, Message: msg})
	if err != nil {
		panic(err) // cannot happen: the reply has only an int and a string
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(data)
}

// invalidUTF8 describes the first invalid UTF-8 sequence in data.
func invalidUTF8(data []byte) string {
	for i := 0; i < len(data); {
		r, n := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && n == 1 {
			return fmt.Sprintf("invalid byte %#02x at offset %d", data[i], i)
		}
		i += n
	}
	return "invalid encoding"
}
