// Package module defines the minimal contract for a modkit module and cross module port lookups
package module

import (
	phttp "writer/internal/platform/net/http"
)

// Module is what the api mounts; it lives apart from modkit so port types can import it without cycles
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
