package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"writer/internal/platform/config"
	"writer/internal/platform/metrics"
	"writer/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	Metrics  *metrics.Registry
	CORS     middleware.CORSOptions
	Timeout  time.Duration
	Throttle int
	Slow     time.Duration
}

// StackFromConfig reads the stack knobs from cfg
// keys: CORS_ORIGINS, REQUEST_TIMEOUT, MAX_IN_FLIGHT, SLOW_REQUEST
func StackFromConfig(cfg config.Conf, reg *metrics.Registry) StackOptions {
	return StackOptions{
		Metrics:  reg,
		CORS:     middleware.CORSOptions{AllowedOrigins: cfg.MayCSV("CORS_ORIGINS", nil)},
		Timeout:  cfg.MayDuration("REQUEST_TIMEOUT", 30*time.Second),
		Throttle: cfg.MayInt("MAX_IN_FLIGHT", 0),
		Slow:     cfg.MayDuration("SLOW_REQUEST", 500*time.Millisecond),
	}
}

// CommonStack returns the baseline middleware slice mounted on the root router
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	stack := []func(http.Handler) http.Handler{
		// tracing / correlation
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.RequestScope(),

		// safety
		middleware.RecoverJSON,

		// observability
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.Slow}),
		middleware.Metrics(o.Metrics),

		// cache / freshness
		middleware.NoCache(),

		// the browser client posts cross origin
		middleware.CORS(o.CORS),
		middleware.Compress(flate.BestSpeed),
		middleware.Throttle(o.Throttle),
	}
	if o.Timeout > 0 {
		stack = append(stack, middleware.Timeout(o.Timeout))
	}
	return stack
}

// APIStack is the middleware for the versioned API scope
// StripSlashes stays off the root so mounted sub muxes like pprof see their own paths
func APIStack() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.StripSlashes(),
	}
}
