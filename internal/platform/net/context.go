// Package net holds transport neutral request helpers shared by the http layer and the cli
package net

import (
	"context"

	"writer/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// Origins tag where a rewrite was requested from
const (
	OriginHTTP = "http"
	OriginCLI  = "cli"
)

// WithRequest stores reqID where both chi and the logger can find it and tags the origin
func WithRequest(ctx context.Context, reqID, origin string) context.Context {
	if reqID != "" {
		// chimw.GetReqID reads this key
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	return logger.WithRequest(ctx, reqID, origin)
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string {
	if v := chimw.GetReqID(ctx); v != "" {
		return v
	}
	return logger.RequestID(ctx)
}
