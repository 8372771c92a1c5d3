// Package handler provides HTTP handlers for team endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fireteam/teamfinder/internal/middleware"
	"github.com/fireteam/teamfinder/internal/team/model"
	"github.com/fireteam/teamfinder/internal/team/service"
)

// Handler handles HTTP requests for team endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new team handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Create handles POST /teams.
func (h *Handler) Create(c *gin.Context) {
	var req model.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "VALIDATION_ERROR", "invalid team payload", http.StatusBadRequest)
		return
	}

	team, err := h.service.CreateTeam(c.Request.Context(), middleware.UserID(c), &req)
	if err != nil {
		h.logger.Errorw("failed to create team", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, team)
}

// List handles GET /teams with optional filters.
func (h *Handler) List(c *gin.Context) {
	filter := &model.ListFilter{
		EventType:   c.Query("event_type"),
		TechStack:   splitTags(c.Query("tech_stack")),
		RolesNeeded: splitTags(c.Query("roles_needed")),
	}
	if raw := c.Query("beginner_friendly"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			errorResponse(c, "VALIDATION_ERROR", "beginner_friendly must be a boolean", http.StatusBadRequest)
			return
		}
		filter.BeginnerFriendly = &v
	}

	teams, err := h.service.ListTeams(c.Request.Context(), filter)
	if err != nil {
		h.logger.Errorw("failed to list teams", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"teams": teams})
}

// Get handles GET /teams/:id.
func (h *Handler) Get(c *gin.Context) {
	team, err := h.service.GetTeam(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, model.ErrTeamNotFound) {
			notFoundResponse(c, "team not found")
			return
		}
		h.logger.Errorw("failed to get team", "team_id", c.Param("id"), "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, team)
}

// ResolveInvite handles GET /teams/invite/:code.
func (h *Handler) ResolveInvite(c *gin.Context) {
	team, err := h.service.GetByInviteCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		if errors.Is(err, model.ErrTeamNotFound) {
			notFoundResponse(c, "no team for this invite code")
			return
		}
		h.logger.Errorw("failed to resolve invite code", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, team)
}

// Delete handles DELETE /teams/:id.
func (h *Handler) Delete(c *gin.Context) {
	err := h.service.DeleteTeam(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, model.ErrTeamNotFound):
			notFoundResponse(c, "team not found")
		case errors.Is(err, model.ErrNotTeamOwner):
			errorResponse(c, "FORBIDDEN", "only the team owner may delete the team", http.StatusForbidden)
		default:
			h.logger.Errorw("failed to delete team", "team_id", c.Param("id"), "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "team deleted"})
}

// Members handles GET /teams/:id/members.
func (h *Handler) Members(c *gin.Context) {
	members, err := h.service.GetMembers(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, model.ErrTeamNotFound) {
			notFoundResponse(c, "team not found")
			return
		}
		h.logger.Errorw("failed to list members", "team_id", c.Param("id"), "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"members": members})
}

// Leave handles POST /teams/:id/leave.
func (h *Handler) Leave(c *gin.Context) {
	err := h.service.LeaveTeam(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, model.ErrTeamNotFound):
			notFoundResponse(c, "team not found")
		case errors.Is(err, model.ErrOwnerCannotLeave):
			errorResponse(c, "FORBIDDEN", "owners must delete the team instead of leaving", http.StatusForbidden)
		case errors.Is(err, model.ErrNotMember):
			errorResponse(c, "CONFLICT", "you are not a member of this team", http.StatusConflict)
		default:
			h.logger.Errorw("failed to leave team", "team_id", c.Param("id"), "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "left team"})
}

// splitTags parses a comma-separated query value into trimmed tags.
func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
