// Package api provides the HTTP API for the application
package api

import (
	"writer/internal/platform/config"
	"writer/internal/platform/logger"
	"writer/internal/platform/metrics"
	phttp "writer/internal/platform/net/http"

	"writer/internal/modkit"
	"writer/internal/modkit/httpkit"
	"writer/internal/modkit/module"
	"writer/internal/modkit/swaggerkit"

	metamod "writer/internal/services/api/meta/module"
	rdomain "writer/internal/services/api/rewrite/domain"
	rewritemod "writer/internal/services/api/rewrite/module"
	webmod "writer/internal/services/api/web/module"
)

// Options are the API options
type Options struct {
	// Config is the CORE_ scope; the api reads API_* and modules read their own sub scopes
	Config  config.Conf
	Logger  *logger.Logger
	Metrics *metrics.Registry
}

// Mount mounts the API service onto the given router and returns the mounted modules
// the router must not have routes yet since the common stack is installed with Use
func Mount(r phttp.Router, opt Options) []module.Module {
	apiCfg := opt.Config.Prefix("API_")
	deps := modkit.Deps{
		Log:     opt.Logger,
		Cfg:     opt.Config,
		Metrics: opt.Metrics,
	}

	r.Use(httpkit.CommonStack(httpkit.StackFromConfig(apiCfg, opt.Metrics))...)

	// rewrite owns the Humanizer port, the others borrow it
	rewrite := rewritemod.New(deps)
	h := module.MustPortsOf[rdomain.Humanizer](rewrite)

	versioned := []module.Module{
		metamod.New(deps, modkit.WithPorts(metamod.Ports{Phrasebook: h})),
		rewrite,
	}
	web := webmod.New(deps, modkit.WithPorts(webmod.Ports{Humanizer: h}))

	// Swagger + profiler + metrics
	swaggerkit.Mount(r, swaggerkit.FromConfig(apiCfg))
	phttp.MountProfiler(r, "/debug", apiCfg.MayBool("PROFILER", false))
	if opt.Metrics != nil {
		phttp.MountMetrics(r, "/metrics", opt.Metrics.Handler(), apiCfg.MayBool("METRICS", true))
	}

	httpkit.MountAPIV1(r, httpkit.APIStack(), func(api httpkit.Router) {
		for _, m := range versioned {
			m.MountRoutes(api)
		}
	})

	// root routes last, the static client is a catch-all
	web.MountRoutes(r)

	log := deps.Logger("api")
	names := make([]string, 0, len(versioned)+1)
	for _, m := range append(versioned, web) {
		names = append(names, m.Name())
	}
	log.Info().Strs("modules", names).Msg("api mounted")

	return append(versioned, web)
}
