package middleware

import (
	"github.com/deppfellow/swimmeet/internal/server"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// Middlewares groups all middleware components used by the HTTP server so
// the router builds them once.
type Middlewares struct {
	// Global holds CORS, request logging, recovery, secure headers and the error handler.
	Global *GlobalMiddlewares

	// Auth guards write routes when a Clerk secret key is configured.
	Auth *AuthMiddleware

	// ContextEnhancer attaches the request-scoped logger.
	ContextEnhancer *ContextEnhancer

	// Tracing installs New Relic transactions and custom attributes.
	Tracing *TracingMiddleware

	// RateLimit enforces server.rate_limit and reports rejections.
	RateLimit *RateLimitMiddleware
}

// NewMiddlewares constructs all middleware components.
//
// Without New Relic, nrApp is nil and tracing degrades into a no-op.
func NewMiddlewares(s *server.Server) *Middlewares {
	var nrApp *newrelic.Application
	if s.LoggerService != nil {
		nrApp = s.LoggerService.GetApplication()
	}

	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		Auth:            NewAuthMiddleware(s),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, nrApp),
		RateLimit:       NewRateLimitMiddleware(s),
	}
}
