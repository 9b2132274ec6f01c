// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"github.com/deppfellow/swimmeet/internal/handler"
	"github.com/deppfellow/swimmeet/internal/middleware"
	"github.com/deppfellow/swimmeet/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter builds the Echo instance with every middleware and route.
//
// Middleware order matters: the request id must exist before the
// transaction and logger pick it up, and the logger must exist before the
// request logger and recover run.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.JSONSerializer = JSONSerializer{}
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.RateLimit.Limit(),
	)

	registerSystemRoutes(router, h)
	registerAPIRoutes(router, h, middlewares)

	return router
}
