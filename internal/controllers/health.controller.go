package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// CacheStatus reports cache reachability and pool statistics.
type CacheStatus interface {
	Status(ctx context.Context) (map[string]interface{}, error)
}

type HealthController struct {
	db      Pinger
	cache   CacheStatus
	version string
	log     *zap.Logger
}

// NewHealthController builds the health endpoints. cache may be nil when
// caching is disabled.
func NewHealthController(db Pinger, cache CacheStatus, version string, log *zap.Logger) *HealthController {
	return &HealthController{db: db, cache: cache, version: version, log: log}
}

// Health godoc
// @Summary Service health
// @Description Reports database and cache reachability
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func (hc *HealthController) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	response := gin.H{
		"message":  "Local news API is running",
		"version":  hc.version,
		"status":   "healthy",
		"database": "up",
	}

	if err := hc.db.Ping(ctx); err != nil {
		hc.log.Error("database ping failed", zap.Error(err))
		status = http.StatusServiceUnavailable
		response["status"] = "unhealthy"
		response["database"] = "down"
	}

	if hc.cache == nil {
		response["cache"] = "disabled"
	} else if stats, err := hc.cache.Status(ctx); err != nil {
		// the cache is optional; reads fall through to the database
		hc.log.Warn("cache unreachable", zap.Error(err))
		response["cache"] = "down"
	} else {
		response["cache"] = stats
	}

	c.JSON(status, response)
}
