// Package handler provides HTTP handlers for application endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fireteam/teamfinder/internal/application/model"
	"github.com/fireteam/teamfinder/internal/application/service"
	"github.com/fireteam/teamfinder/internal/middleware"
	teamModel "github.com/fireteam/teamfinder/internal/team/model"
)

// Handler handles HTTP requests for application endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new application handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Apply handles POST /teams/:id/applications.
func (h *Handler) Apply(c *gin.Context) {
	var req model.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "VALIDATION_ERROR",
			"preferred_role and a 10-digit contact_info are required", http.StatusBadRequest)
		return
	}

	app, err := h.service.Apply(c.Request.Context(), middleware.UserID(c), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, teamModel.ErrTeamNotFound):
			notFoundResponse(c, "team not found")
		case errors.Is(err, teamModel.ErrAlreadyMember):
			errorResponse(c, "CONFLICT", "you are already a member of this team", http.StatusConflict)
		case errors.Is(err, model.ErrAlreadyApplied):
			errorResponse(c, "CONFLICT", "you already have a pending application", http.StatusConflict)
		case errors.Is(err, teamModel.ErrTeamFull):
			errorResponse(c, "CONFLICT", "team is full", http.StatusConflict)
		default:
			h.logger.Errorw("failed to apply", "team_id", c.Param("id"), "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, app)
}

// ListForTeam handles GET /teams/:id/applications.
func (h *Handler) ListForTeam(c *gin.Context) {
	status := c.Query("status")
	switch status {
	case "", model.StatusPending, model.StatusApproved, model.StatusRejected:
	default:
		errorResponse(c, "VALIDATION_ERROR", "unknown status filter", http.StatusBadRequest)
		return
	}

	apps, err := h.service.ListForTeam(c.Request.Context(), middleware.UserID(c), c.Param("id"), status)
	if err != nil {
		switch {
		case errors.Is(err, teamModel.ErrTeamNotFound):
			notFoundResponse(c, "team not found")
		case errors.Is(err, teamModel.ErrNotTeamOwner):
			errorResponse(c, "FORBIDDEN", "only the team owner may review applications", http.StatusForbidden)
		default:
			h.logger.Errorw("failed to list applications", "team_id", c.Param("id"), "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

// ListMine handles GET /applications/mine.
func (h *Handler) ListMine(c *gin.Context) {
	apps, err := h.service.ListMine(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.logger.Errorw("failed to list own applications", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

// Approve handles POST /applications/:id/approve.
func (h *Handler) Approve(c *gin.Context) {
	app, err := h.service.Approve(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		h.decisionError(c, err)
		return
	}

	c.JSON(http.StatusOK, app)
}

// Reject handles POST /applications/:id/reject.
func (h *Handler) Reject(c *gin.Context) {
	app, err := h.service.Reject(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		h.decisionError(c, err)
		return
	}

	c.JSON(http.StatusOK, app)
}

func (h *Handler) decisionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrApplicationNotFound):
		notFoundResponse(c, "application not found")
	case errors.Is(err, teamModel.ErrTeamNotFound):
		notFoundResponse(c, "team not found")
	case errors.Is(err, teamModel.ErrNotTeamOwner):
		errorResponse(c, "FORBIDDEN", "only the team owner may decide applications", http.StatusForbidden)
	case errors.Is(err, model.ErrNotPending):
		errorResponse(c, "INVALID_STATE", "application has already been decided", http.StatusConflict)
	case errors.Is(err, teamModel.ErrTeamFull):
		errorResponse(c, "CONFLICT", "team is full", http.StatusConflict)
	default:
		h.logger.Errorw("failed to decide application", "application_id", c.Param("id"), "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
	}
}
