package modkit

import (
	"net/http"

	"writer/internal/modkit/httpkit"
	pstrings "writer/internal/platform/strings"
)

// Option mutates build configuration for a module
type Option func(*buildCfg)

// buildCfg is internal wiring state for options
type buildCfg struct {
	name     string
	prefix   string
	mw       []func(http.Handler) http.Handler
	ports    any
	register func(httpkit.Router)
}

// WithName sets a module name used in logs and port lookups
func WithName(name string) Option {
	return func(c *buildCfg) { c.name = name }
}

// WithPrefix mounts a module under a path prefix; "" mounts at the parent router
func WithPrefix(prefix string) Option {
	return func(c *buildCfg) { c.prefix = prefix }
}

// WithMiddlewares attaches per module middleware in order
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(c *buildCfg) { c.mw = append(c.mw, mw...) }
}

// WithPorts injects cross module ports declared by another module
// the concrete type is owned by the importing module
func WithPorts[T any](p T) Option {
	return func(c *buildCfg) { c.ports = p }
}

// WithRegister adds extra endpoints after the module's own routes
func WithRegister(fn func(httpkit.Router)) Option {
	return func(c *buildCfg) { c.register = fn }
}

// Built is a plain struct with the fields modules care about
type Built struct {
	Name     string
	Prefix   string
	Mw       []func(http.Handler) http.Handler
	Ports    any
	Register func(httpkit.Router)
}

// Build applies options in order; later options win
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}
	if c.register == nil {
		c.register = func(httpkit.Router) {}
	}
	return Built{
		Name:     c.name,
		Prefix:   c.prefix,
		Mw:       append([]func(http.Handler) http.Handler(nil), c.mw...),
		Ports:    c.ports,
		Register: c.register,
	}
}

// Base carries the built config and implements Name and MountRoutes for a module
// modules embed it, supply their own routes and usually override Ports
type Base struct {
	b      Built
	routes func(httpkit.Router)
}

// NewBase pairs a Built config with the module's own route registration
func NewBase(b Built, routes func(httpkit.Router)) Base {
	return Base{b: b, routes: routes}
}

// Name returns the module name, panicking if none was set
func (m Base) Name() string { return pstrings.MustString(m.b.Name, "module name") }

// Prefix returns the mount prefix, "" for root mounted modules
func (m Base) Prefix() string {
	if m.b.Prefix == "" {
		return ""
	}
	return pstrings.MustPrefix(m.b.Prefix)
}

// Ports returns the ports injected with WithPorts
func (m Base) Ports() any { return m.b.Ports }

// MountRoutes mounts the module routes under its prefix with its middlewares
func (m Base) MountRoutes(r httpkit.Router) {
	mount := func(rr httpkit.Router) {
		if len(m.b.Mw) > 0 {
			rr.Use(m.b.Mw...)
		}
		if m.routes != nil {
			m.routes(rr)
		}
		m.b.Register(rr)
	}
	if p := m.Prefix(); p != "" {
		r.Route(p, mount)
		return
	}
	r.Group(mount)
}
