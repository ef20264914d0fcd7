package middleware

import (
	"net/http"
	"strconv"
	"time"

	"writer/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
)

// Metrics counts requests and observes latency per route pattern
// the pattern is read after routing so /api/v1/rewrite/humanize stays one series
func Metrics(reg *metrics.Registry) func(http.Handler) http.Handler {
	if reg == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	total := reg.Counter("http_requests_total", "HTTP requests by route, method and status", "route", "method", "status")
	latency := reg.Histogram("http_request_duration_seconds", "HTTP request latency by route", nil, "route", "method")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cw := &captureWriter{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(cw, r)

			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if p := rctx.RoutePattern(); p != "" {
					route = p
				}
			}
			total.WithLabelValues(route, r.Method, strconv.Itoa(cw.status)).Inc()
			latency.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
		})
	}
}
