// @title         Writer API
// @version       1.0
// @description   Rewrites stiff text into plainer text with deterministic substitutions.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"writer/internal/core/version"
	"writer/internal/platform/config"
	"writer/internal/platform/logger"
	"writer/internal/platform/metrics"
	phttp "writer/internal/platform/net/http"

	"writer/internal/services/api"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// CORE_* for modules, CORE_API_* for http
	core := config.New().Prefix("CORE_")
	apiCfg := core.Prefix("API_")

	// bring up logging early
	opt := logger.FromEnv()
	if opt.Service == "" {
		opt.Service = version.Service
	}
	logger.Init(opt)
	l := logger.Get()

	reg := metrics.New("writer")

	// http server (reads CORE_API_PORT, falls back to PORT)
	srv := phttp.NewServer(apiCfg)

	api.Mount(srv.Router(), api.Options{
		Config:  core,
		Logger:  l,
		Metrics: reg,
	})

	b := version.Info()
	l.Info().Str("version", b.Version).Str("commit", b.Commit).Str("addr", srv.Addr()).Msg("writer api starting")

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
