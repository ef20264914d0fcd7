package http

import (
	stdhttp "net/http"

	mw "github.com/go-chi/chi/v5/middleware"
)

// MountProfiler mounts pprof under prefix, eg "/debug", when enabled
func MountProfiler(r Router, prefix string, enabled bool) {
	if !enabled {
		return
	}
	r.Mount(prefix, mw.Profiler())
}

// MountMetrics exposes a metrics handler at path when enabled
func MountMetrics(r Router, path string, h stdhttp.Handler, enabled bool) {
	if !enabled || h == nil {
		return
	}
	r.Handle(path, h)
}
