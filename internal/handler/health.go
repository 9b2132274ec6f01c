package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/swimmeet/internal/middleware"
	"github.com/deppfellow/swimmeet/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const defaultHealthCheckTimeout = 5 * time.Second

// HealthHandler serves GET /status for load balancers and uptime monitors.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// dependencyCheck pings one backend. critical failures turn the whole
// report unhealthy; others are only reported.
type dependencyCheck struct {
	name     string
	critical bool
	ping     func(ctx context.Context) error
}

func (h *HealthHandler) checks() []dependencyCheck {
	var checks []dependencyCheck

	obs := h.server.Config.Observability
	enabled := func(name string) bool {
		return obs == nil || obs.HealthCheckEnabled(name)
	}

	if h.server.DB != nil && enabled("database") {
		checks = append(checks, dependencyCheck{name: "database", critical: true, ping: h.server.DB.Ping})
	}

	// Redis only backs background jobs, so it never fails the report.
	if h.server.Redis != nil && enabled("redis") {
		checks = append(checks, dependencyCheck{
			name: "redis",
			ping: func(ctx context.Context) error { return h.server.Redis.Ping(ctx).Err() },
		})
	}

	return checks
}

func (h *HealthHandler) timeout() time.Duration {
	if obs := h.server.Config.Observability; obs != nil && obs.HealthChecks.Timeout > 0 {
		return obs.HealthChecks.Timeout
	}
	return defaultHealthCheckTimeout
}

// CheckHealth returns the service status and its dependency checks.
//
// 200 OK when every critical check passes, 503 Service Unavailable otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	checks := make(map[string]any)
	response := map[string]any{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"driver":      h.server.Config.Database.Driver,
		"checks":      checks,
	}

	isHealthy := true
	for _, check := range h.checks() {
		result, err := h.run(c.Request().Context(), check, &logger)
		checks[check.name] = result
		if err != nil && check.critical {
			isHealthy = false
		}
	}

	if !isHealthy {
		response["status"] = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		h.recordHealthEvent(map[string]any{
			"check_type":        "overall",
			"error_type":        "overall_unhealthy",
			"total_duration_ms": time.Since(start).Milliseconds(),
		})

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	if err := c.JSON(http.StatusOK, response); err != nil {
		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}

func (h *HealthHandler) run(parent context.Context, check dependencyCheck, logger *zerolog.Logger) (map[string]any, error) {
	ctx, cancel := context.WithTimeout(parent, h.timeout())
	defer cancel()

	checkStart := time.Now()
	err := check.ping(ctx)
	elapsed := time.Since(checkStart)

	if err != nil {
		logger.Error().
			Err(err).
			Str("check", check.name).
			Dur("response_time", elapsed).
			Msg("dependency health check failed")

		h.recordHealthEvent(map[string]any{
			"check_type":       check.name,
			"error_type":       check.name + "_unhealthy",
			"response_time_ms": elapsed.Milliseconds(),
			"error_message":    err.Error(),
		})

		return map[string]any{
			"status":        "unhealthy",
			"response_time": elapsed.String(),
			"error":         err.Error(),
		}, err
	}

	return map[string]any{
		"status":        "healthy",
		"response_time": elapsed.String(),
	}, nil
}

// recordHealthEvent sends a HealthCheckError custom event when New Relic is enabled.
func (h *HealthHandler) recordHealthEvent(attrs map[string]any) {
	if h.server.LoggerService == nil || h.server.LoggerService.GetApplication() == nil {
		return
	}
	attrs["operation"] = "health_check"
	h.server.LoggerService.GetApplication().RecordCustomEvent("HealthCheckError", attrs)
}
