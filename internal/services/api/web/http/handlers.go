// Package http serves the root routes the browser client talks to:
// the plain health string, the bare JSON /humanize route and the static client itself
package http

import (
	"embed"
	"io/fs"
	"net/http"

	"writer/internal/modkit/httpkit"
	perr "writer/internal/platform/errors"
	"writer/internal/platform/logger"
	"writer/internal/services/api/rewrite/domain"
)

// HealthText is the liveness body for GET /health
const HealthText = "Writer API is running ✅"

//go:embed static
var assets embed.FS

// Deps are the handler dependencies
type Deps struct {
	Humanizer domain.Humanizer
	// Static serves the embedded browser client at /
	Static bool
}

// legacyInput mirrors domain.HumanizeInput without validation tags
// unknown tones fall back to neutral here instead of being rejected
type legacyInput struct {
	Text               string `json:"text"`
	Tone               string `json:"tone"`
	Contractions       *bool  `json:"contractions"`
	BreakLongSentences *bool  `json:"breakLongSentences"`
}

type legacyResult struct {
	Result string `json:"result"`
}

type legacyError struct {
	Error string `json:"error"`
}

type handlers struct {
	deps Deps
	bind httpkit.BindOptions
}

// Register mounts the root routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d, bind: httpkit.DefaultBindOptions()}
	h.bind.DisallowUnknown = false

	r.Get("/health", httpkit.Handle(h.health))
	if d.Humanizer != nil {
		r.Post("/humanize", httpkit.Handle(h.humanize))
	}
	if d.Static {
		r.Handle("/*", Static())
	}
}

// Static returns a file server over the embedded client
func Static() http.Handler {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}

func (h *handlers) health(_ *http.Request) httpkit.Response {
	return httpkit.Text(http.StatusOK, HealthText)
}

func (h *handlers) humanize(r *http.Request) httpkit.Response {
	in, err := httpkit.Bind[legacyInput](r, h.bind)
	if err != nil {
		return h.fail(r, err)
	}
	res, err := h.deps.Humanizer.Humanize(r.Context(), domain.HumanizeInput(in))
	if err != nil {
		return h.fail(r, err)
	}
	return httpkit.Bare(http.StatusOK, legacyResult{Result: res.Result})
}

// fail keeps the bare {"error": ...} body the browser client reads
func (h *handlers) fail(r *http.Request, err error) httpkit.Response {
	status, w := perr.HTTP(err)
	if status >= http.StatusInternalServerError {
		logger.C(r.Context()).Error().Err(err).Msg("legacy humanize failed")
	}
	return httpkit.Bare(status, legacyError{Error: w.Message})
}
