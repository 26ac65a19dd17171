// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const probeTimeout = 2 * time.Second

// Probe reports whether a dependency answers.
type Probe func(ctx context.Context) error

// Dependency states reported by the health endpoint.
const (
	DependencyConnected    = "connected"
	DependencyDisconnected = "disconnected"
	DependencyDisabled     = "disabled"
)

// HealthController reports the API and its optional dependencies.
type HealthController struct {
	database Probe
	cache    Probe
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Cache     string `json:"cache"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new HealthController. A nil probe marks the
// dependency as not configured.
func NewHealthController(database, cache Probe) *HealthController {
	return &HealthController{
		database: database,
		cache:    cache,
	}
}

// Check handles GET /health. It answers 503 with status "degraded" when a
// configured dependency does not answer; disabled ones never degrade.
func (h *HealthController) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), probeTimeout)
	defer cancel()

	response := HealthResponse{
		Status:    "ok",
		Database:  probe(ctx, "database", h.database),
		Cache:     probe(ctx, "cache", h.cache),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	status := http.StatusOK
	if response.Database == DependencyDisconnected || response.Cache == DependencyDisconnected {
		response.Status = "degraded"
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, response)
}

func probe(ctx context.Context, name string, p Probe) string {
	if p == nil {
		return DependencyDisabled
	}
	if err := p(ctx); err != nil {
		slog.WarnContext(ctx, "Health probe failed", "dependency", name, "error", err)
		return DependencyDisconnected
	}
	return DependencyConnected
}
