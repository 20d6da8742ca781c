package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// PingFunc reports whether the backing store is reachable.
type PingFunc func(ctx context.Context) error

// HealthHandler exposes liveness and readiness probes.
type HealthHandler struct {
	ping    PingFunc
	version string
}

func NewHealthHandler(ping PingFunc, version string) *HealthHandler {
	return &HealthHandler{
		ping:    ping,
		version: version,
	}
}

// LivenessCheck handles kubernetes liveness probe
func (h *HealthHandler) LivenessCheck(c *gin.Context) {
	c.Status(http.StatusOK)
}

// ReadinessCheck handles kubernetes readiness probe; it fails when the
// document store is unreachable.
func (h *HealthHandler) ReadinessCheck(c *gin.Context) {
	if err := h.ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "down",
			"error":  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "up",
		"version": h.version,
	})
}
