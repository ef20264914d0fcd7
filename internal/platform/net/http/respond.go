// Package http provides the chi backed router seam, the server and response helpers
package http

import (
	"encoding/json"
	stdhttp "net/http"

	pnet "writer/internal/platform/net"
)

// Envelope is the standard response body for versioned endpoints
type Envelope = pnet.Wire

type bodyKind uint8

const (
	kindEnvelope bodyKind = iota
	kindBare
	kindText
)

// JSON writes v as application/json with the given status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// RespondError maps a project error into an envelope and writes it
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	status, env := pnet.Error(err, pnet.RequestID(r.Context()))
	JSON(w, status, env)
}

// Response is a functional response object for return-style handlers
type Response struct {
	Status int
	Body   any
	// optional headers if a handler wants to add any
	Header stdhttp.Header

	kind bodyKind
}

// Handle adapts a Response-returning handler to net/http
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		h(r).write(w, r)
	}
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	for k, vv := range resp.Header {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}
	status := resp.Status
	if status == 0 {
		status = stdhttp.StatusOK
	}

	switch resp.kind {
	case kindText:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(status)
		s, _ := resp.Body.(string)
		_, _ = w.Write([]byte(s))
		return
	case kindBare:
		JSON(w, status, resp.Body)
		return
	}

	reqID := pnet.RequestID(r.Context())
	// an error body decides its own status
	if err, ok := resp.Body.(error); ok && err != nil {
		status, env := pnet.Error(err, reqID)
		JSON(w, status, env)
		return
	}
	st, env := pnet.Reply(status, resp.Body, reqID)
	JSON(w, st, env)
}

// OK returns a 200 enveloped response
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Error returns a response that maps the error to status and envelope
func Error(err error) Response { return Response{Body: err} }

// Bare returns a JSON response written as is, without the envelope
func Bare(status int, v any) Response { return Response{Status: status, Body: v, kind: kindBare} }

// Text returns a text/plain response
func Text(status int, s string) Response { return Response{Status: status, Body: s, kind: kindText} }
