// Package module wires the rewrite API into HTTP via modkit
package module

import (
	"writer/internal/core/rewrite"
	"writer/internal/modkit"
	"writer/internal/modkit/httpkit"
	"writer/internal/services/api/rewrite/domain"

	rewritehttp "writer/internal/services/api/rewrite/http"
	"writer/internal/services/api/rewrite/service"
)

// Ports exposes the humanizer for cross-module lookups
type Ports struct {
	Humanizer domain.Humanizer
}

// Module implements the rewrite module
type Module struct {
	modkit.Base
	ports Ports
}

var _ modkit.Builder = New

// New constructs the rewrite module; pipeline knobs come from deps.Cfg under REWRITE_
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("rewrite"),
		modkit.WithPrefix("/rewrite"),
	}, opts...)...)

	p := rewrite.New(PipelineOptions(deps.Cfg.Prefix("REWRITE_"))...)
	svc := service.New(p, deps.Metrics)

	deps.Logger("rewrite").Info().
		Int("max_sentence", p.MaxSentence()).
		Int("phrasebook_version", p.Phrasebook().Version).
		Msg("rewrite pipeline ready")

	m := &Module{ports: Ports{Humanizer: svc}}
	m.Base = modkit.NewBase(b, func(r httpkit.Router) {
		rewritehttp.Register(r, svc)
	})
	return m
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
