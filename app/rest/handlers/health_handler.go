package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// DependencyChecker reports whether one backing dependency is reachable
type DependencyChecker interface {
	HealthCheck(ctx context.Context) error
}

// HealthHandler handles health check HTTP requests
type HealthHandler struct {
	database DependencyChecker
	platform DependencyChecker
	logger   *slog.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(database, platform DependencyChecker, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		database: database,
		platform: platform,
		logger:   logger,
	}
}

// HealthCheck performs a basic health check
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Service:   "store-rating-service",
		Version:   "1.0.0",
		Uptime:    time.Since(startTime).String(),
	})
}

// ReadinessCheck verifies the database and the identity platform are
// reachable. The platform being down degrades readiness but the check
// result still names which dependency failed.
func (h *HealthHandler) ReadinessCheck(c echo.Context) error {
	ctx := c.Request().Context()
	checks := make(map[string]HealthStatus)

	checks["database"] = h.runCheck(ctx, h.database)
	checks["identity_platform"] = h.runCheck(ctx, h.platform)

	allHealthy := true
	for name, check := range checks {
		if check.Status != "healthy" {
			allHealthy = false
			h.logger.Warn("readiness check failed", "dependency", name, "message", check.Message)
		}
	}

	statusCode := http.StatusOK
	status := "ready"
	if !allHealthy {
		statusCode = http.StatusServiceUnavailable
		status = "not_ready"
	}

	return c.JSON(statusCode, ReadinessResponse{
		Status:    status,
		Timestamp: time.Now(),
		Service:   "store-rating-service",
		Checks:    checks,
	})
}

// LivenessCheck performs a liveness check
func (h *HealthHandler) LivenessCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:    "alive",
		Timestamp: time.Now(),
		Service:   "store-rating-service",
		Version:   "1.0.0",
		Uptime:    time.Since(startTime).String(),
	})
}

func (h *HealthHandler) runCheck(ctx context.Context, dep DependencyChecker) HealthStatus {
	if dep == nil {
		return HealthStatus{Status: "unknown", Message: "not configured"}
	}

	start := time.Now()
	if err := dep.HealthCheck(ctx); err != nil {
		return HealthStatus{
			Status:  "unhealthy",
			Message: err.Error(),
			Latency: time.Since(start).String(),
		}
	}

	return HealthStatus{
		Status:  "healthy",
		Message: "connected",
		Latency: time.Since(start).String(),
	}
}

// Response types
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Uptime    string    `json:"uptime"`
}

type ReadinessResponse struct {
	Status    string                  `json:"status"`
	Timestamp time.Time               `json:"timestamp"`
	Service   string                  `json:"service"`
	Checks    map[string]HealthStatus `json:"checks"`
}

type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Latency string `json:"latency,omitempty"`
}

// startTime is set when the service starts
var startTime = time.Now()
