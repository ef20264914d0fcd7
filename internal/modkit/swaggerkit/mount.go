// Package swaggerkit provides helpers to mount Swagger UI and JSON spec
package swaggerkit

import (
	"net/http"

	"writer/internal/platform/config"
	phttp "writer/internal/platform/net/http"
	docs "writer/internal/services/api/docs"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Options controls where and how the docs are served
type Options struct {
	Enabled     bool
	TitleSuffix string
	// ServerURL is the OAS3 server base for the versioned routes
	ServerURL string
}

// FromConfig reads SWAGGER and DOCS_TITLE_SUFFIX from cfg
func FromConfig(cfg config.Conf) Options {
	return Options{
		Enabled:     cfg.MayBool("SWAGGER", false),
		TitleSuffix: cfg.MayString("DOCS_TITLE_SUFFIX", ""),
		ServerURL:   "/api/v1",
	}
}

// Mount the Swagger UI and JSON spec if enabled
func Mount(r phttp.Router, o Options) {
	if !o.Enabled {
		return
	}
	r.Get("/api/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/api/docs/", http.StatusPermanentRedirect)
	})
	r.Get("/api/docs/doc.json", serveDocJSON(o))
	r.Handle("/api/docs/*", httpSwagger.Handler(
		httpSwagger.InstanceName(docs.SwaggerInfo.InstanceName()),
		httpSwagger.URL("/api/docs/doc.json"),
	))
}
