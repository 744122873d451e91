package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger is a dependency the health check can probe
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports liveness and dependency reachability
type HealthHandler struct {
	checks  map[string]Pinger
	details map[string]func() any
	timeout time.Duration
}

// NewHealthHandler creates a health handler probing each named dependency
func NewHealthHandler(checks map[string]Pinger, timeout time.Duration) *HealthHandler {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &HealthHandler{checks: checks, details: map[string]func() any{}, timeout: timeout}
}

// WithDetail adds an informational section, such as pool statistics, to every answer
func (h *HealthHandler) WithDetail(name string, fn func() any) *HealthHandler {
	h.details[name] = fn
	return h
}

// Health handles GET /health. Any failing dependency turns the answer into 503.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	status := http.StatusOK
	results := make(map[string]string, len(h.checks))
	for name, check := range h.checks {
		if err := check.Ping(ctx); err != nil {
			results[name] = err.Error()
			status = http.StatusServiceUnavailable
			continue
		}
		results[name] = "ok"
	}

	overall := "ok"
	if status != http.StatusOK {
		overall = "degraded"
	}
	body := gin.H{"status": overall, "checks": results}
	for name, fn := range h.details {
		body[name] = fn()
	}
	c.JSON(status, body)
}
