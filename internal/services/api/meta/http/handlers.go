// Package http provides meta endpoints
package http

import (
	"net/http"
	"time"

	"writer/internal/core/version"
	"writer/internal/modkit/httpkit"
	perr "writer/internal/platform/errors"
	rdomain "writer/internal/services/api/rewrite/domain"
)

// PhrasebookSource is satisfied by the rewrite module's humanizer
type PhrasebookSource interface {
	Phrasebook() rdomain.PhrasebookInfo
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Phrasebook  PhrasebookSource
	Now         func() time.Time
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	if d.Now == nil {
		d.Now = time.Now
	}
	h := &handlers{deps: d}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
	httpkit.Get(r, "/phrasebook", h.phrasebook)
}

//
// Swagger DTOs and route docs
//

// HealthResponse is the health payload
// swagger:model
type HealthResponse struct {
	OK      bool   `json:"ok"       example:"true"`
	Service string `json:"service"  example:"writer-api"`
	Started string `json:"started"  example:"2026-10-01T13:00:00Z"`
	Now     string `json:"now"      example:"2026-10-01T13:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string `json:"name"    example:"writer-api"`
	Started string `json:"started" example:"2026-10-01T13:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// PhrasebookResponse reports the loaded tables and the build they shipped with
type PhrasebookResponse struct {
	Phrasebook rdomain.PhrasebookInfo `json:"phrasebook"`
	Build      version.BuildInfo      `json:"build"`
}

// swagger:route GET /meta/health Meta metaHealth
// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     h.deps.Now().UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /meta/version Meta metaVersion
// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo "ok"
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

// swagger:route GET /meta/service Meta metaService
// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse "ok"
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	uptime := h.deps.Now().Sub(h.deps.StartedAt)
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(uptime / time.Second),
	}, nil
}

// swagger:route GET /meta/phrasebook Meta metaPhrasebook
// @Summary Phrasebook version, table sizes and build
// @Tags Meta
// @Produce json
// @Success 200 {object} PhrasebookResponse "ok"
// @Router /meta/phrasebook [get]
func (h *handlers) phrasebook(_ *http.Request) (any, error) {
	if h.deps.Phrasebook == nil {
		return nil, perr.Unavailablef("phrasebook not wired")
	}
	return PhrasebookResponse{
		Phrasebook: h.deps.Phrasebook.Phrasebook(),
		Build:      version.Info(),
	}, nil
}
