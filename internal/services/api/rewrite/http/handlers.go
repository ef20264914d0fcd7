// Package http provides HTTP transport for the rewrite API
package http

import (
	stdhttp "net/http"
	"sync"

	"writer/internal/core/phrasebook"
	"writer/internal/modkit/httpkit"
	"writer/internal/platform/net/http/bind"
	"writer/internal/services/api/rewrite/domain"
)

var toneOnce sync.Once

// registerToneTag teaches the validator the tone tag used by domain.HumanizeInput
func registerToneTag() {
	toneOnce.Do(func() {
		err := bind.RegisterValidation("tone", func(fl bind.FieldLevel) bool {
			_, ok := phrasebook.ParseTone(fl.Field().String())
			return ok
		}, "{0} must be one of neutral, casual, formal")
		if err != nil {
			panic(err)
		}
	})
}

// Register mounts rewrite endpoints on the given router
func Register(r httpkit.Router, s domain.Humanizer) {
	registerToneTag()
	h := &handlers{svc: s}

	httpkit.PostJSON(r, "/humanize", h.humanize)
	httpkit.Get(r, "/tones", h.tones)
}

type handlers struct{ svc domain.Humanizer }

// swagger:route POST /rewrite/humanize Rewrite rewriteHumanize
// @Summary Rewrite text to sound less stiff
// @Tags Rewrite
// @Accept json
// @Produce json
// @Param payload body domain.HumanizeInput true "Text and options"
// @Success 200 {object} domain.HumanizeResult "ok"
// @Router /rewrite/humanize [post]
func (h *handlers) humanize(r *stdhttp.Request, in domain.HumanizeInput) (any, error) {
	return h.svc.Humanize(r.Context(), in)
}

// swagger:route GET /rewrite/tones Rewrite rewriteTones
// @Summary Tone tables in display order
// @Tags Rewrite
// @Produce json
// @Success 200 {object} domain.TonesResp "ok"
// @Router /rewrite/tones [get]
func (h *handlers) tones(_ *stdhttp.Request) (any, error) {
	return h.svc.Tones(), nil
}
