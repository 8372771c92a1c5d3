// Package handler provides HTTP handlers for dashboard endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fireteam/teamfinder/internal/dashboard/service"
	"github.com/fireteam/teamfinder/internal/middleware"
)

// Handler handles HTTP requests for dashboard endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new dashboard handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Get handles GET /dashboard.
func (h *Handler) Get(c *gin.Context) {
	resp, err := h.service.GetDashboard(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.logger.Errorw("failed to build dashboard", "user_id", middleware.UserID(c), "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}
