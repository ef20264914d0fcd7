// Package httpkit provides handler and routing helpers that alias the platform http package
// use these from modules so they do not import internal/platform/net/http directly
package httpkit

import (
	"net/http"

	phttp "writer/internal/platform/net/http"
	"writer/internal/platform/net/http/bind"

	"github.com/go-chi/chi/v5"
)

type (
	// Envelope is the transport envelope type
	Envelope = phttp.Envelope

	// Response is the HTTP response type
	Response = phttp.Response

	// Handler is the platform handler type
	Handler = phttp.Handler

	// Router is a re-export of the platform router seam
	Router = phttp.Router

	// BindOptions are the JSON body parsing knobs
	BindOptions = bind.JSONOptions
)

// AdaptChi wraps a chi router in the Router seam
func AdaptChi(r chi.Router) Router { return phttp.AdaptChi(r) }

// OK returns a 200 enveloped response
func OK(data any) Response { return phttp.OK(data) }

// Error returns a response that maps an error to status and envelope
func Error(err error) Response { return phttp.Error(err) }

// Bare returns a JSON body without the envelope, for the legacy routes
func Bare(status int, v any) Response { return phttp.Bare(status, v) }

// Text returns a text/plain response
func Text(status int, s string) Response { return phttp.Text(status, s) }

// JSON binds and validates a T body, then hands it to fn
func JSON[T any](fn func(*http.Request, T) (any, error)) Handler {
	return phttp.JSONHandler(fn)
}

// Call adapts a handler that takes no JSON body
func Call(fn func(*http.Request) (any, error)) Handler {
	return phttp.JSONHandlerNoBody(fn)
}

// Handle lets you directly adapt a Response-returning function if you prefer
func Handle(fn func(*http.Request) Response) Handler {
	return phttp.Handle(fn)
}

// Bind decodes and validates a T body without writing anything
// for handlers that shape their own error bodies
func Bind[T any](r *http.Request, opts ...BindOptions) (T, error) {
	return bind.ParseJSON[T](r, opts...)
}

// DefaultBindOptions returns the options JSON uses
func DefaultBindOptions() BindOptions { return bind.DefaultJSONOptions() }
