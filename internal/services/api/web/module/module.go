// Package module mounts the root routes used by the browser client
package module

import (
	"writer/internal/modkit"
	"writer/internal/modkit/httpkit"
	"writer/internal/services/api/rewrite/domain"

	webhttp "writer/internal/services/api/web/http"
)

// Ports are what the web module needs; inject with modkit.WithPorts
type Ports struct {
	Humanizer domain.Humanizer
}

// Module implements the web module
type Module struct {
	modkit.Base
}

var _ modkit.Builder = New

// New constructs the web module; it mounts at the root unless WithPrefix says otherwise
// API_WEB under deps.Cfg toggles the embedded client (default on)
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("web")}, opts...)...)

	p, _ := b.Ports.(Ports)
	static := deps.Cfg.Prefix("API_").MayBool("WEB", true)
	if p.Humanizer == nil {
		deps.Logger("web").Warn().Msg("no humanizer wired, POST /humanize disabled")
	}

	m := &Module{}
	m.Base = modkit.NewBase(b, func(r httpkit.Router) {
		webhttp.Register(r, webhttp.Deps{Humanizer: p.Humanizer, Static: static})
	})
	return m
}
