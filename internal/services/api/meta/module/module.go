// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	"writer/internal/core/version"
	modkit "writer/internal/modkit"
	"writer/internal/modkit/httpkit"

	metahttp "writer/internal/services/api/meta/http"
)

// Ports are what meta needs from other modules; inject with modkit.WithPorts
type Ports struct {
	Phrasebook metahttp.PhrasebookSource
}

// Module implements the modkit.Module interface
type Module struct {
	modkit.Base
	startedAt time.Time
}

var _ modkit.Builder = New

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	p, _ := b.Ports.(Ports)
	m := &Module{startedAt: time.Now()}
	m.Base = modkit.NewBase(b, func(r httpkit.Router) {
		metahttp.Register(r, metahttp.Deps{
			ServiceName: version.Service,
			StartedAt:   m.startedAt,
			Phrasebook:  p.Phrasebook,
		})
	})
	return m
}
