// Package health provides health check endpoint handler.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fireteam/teamfinder/internal/database"
)

// Handler handles health check requests.
type Handler struct {
	db     *gorm.DB
	rdb    *redis.Client
	logger *zap.SugaredLogger
}

// New creates a new health handler instance.
func New(db *gorm.DB, rdb *redis.Client, logger *zap.SugaredLogger) *Handler {
	return &Handler{
		db:     db,
		rdb:    rdb,
		logger: logger,
	}
}

// Response represents health check response.
type Response struct {
	Status string `json:"status"`
}

// Check handles GET /health request.
func (h *Handler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := database.HealthCheck(ctx, h.db); err != nil {
		h.logger.Warnw("health check failed", "component", "postgres", "error", err)
		c.JSON(http.StatusServiceUnavailable, Response{
			Status: "unhealthy",
		})
		return
	}

	if err := h.rdb.Ping(ctx).Err(); err != nil {
		h.logger.Warnw("health check failed", "component", "redis", "error", err)
		c.JSON(http.StatusServiceUnavailable, Response{
			Status: "unhealthy",
		})
		return
	}

	c.JSON(http.StatusOK, Response{
		Status: "ok",
	})
}
