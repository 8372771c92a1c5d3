// Package handler provides HTTP handlers for profile endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fireteam/teamfinder/internal/middleware"
	"github.com/fireteam/teamfinder/internal/profile/model"
	"github.com/fireteam/teamfinder/internal/profile/service"
)

// maxAvatarSize bounds avatar uploads to 5 MiB.
const maxAvatarSize = 5 << 20

// Handler handles HTTP requests for profile endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new profile handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Me handles GET /profile/me. A missing profile is the normal pre-onboarding
// state and comes back as 404.
func (h *Handler) Me(c *gin.Context) {
	profile, err := h.service.Get(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		if errors.Is(err, model.ErrProfileNotFound) {
			notFoundResponse(c, "profile not found")
			return
		}
		h.logger.Errorw("failed to get own profile", "user_id", middleware.UserID(c), "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// Get handles GET /profile/:user_id.
func (h *Handler) Get(c *gin.Context) {
	userID := c.Param("user_id")

	profile, err := h.service.Get(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, model.ErrProfileNotFound) {
			notFoundResponse(c, "profile not found")
			return
		}
		h.logger.Errorw("failed to get profile", "user_id", userID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// Upsert handles PUT /profile.
func (h *Handler) Upsert(c *gin.Context) {
	var req model.UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "VALIDATION_ERROR", "invalid profile payload", http.StatusBadRequest)
		return
	}

	profile, err := h.service.Upsert(c.Request.Context(), middleware.UserID(c), &req)
	if err != nil {
		h.logger.Errorw("failed to save profile", "user_id", middleware.UserID(c), "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UploadAvatar handles POST /profile/avatar with a multipart "avatar" field.
func (h *Handler) UploadAvatar(c *gin.Context) {
	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		errorResponse(c, "VALIDATION_ERROR", "avatar file is required", http.StatusBadRequest)
		return
	}
	if fileHeader.Size > maxAvatarSize {
		errorResponse(c, "VALIDATION_ERROR", "avatar exceeds the 5MB limit", http.StatusBadRequest)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		errorResponse(c, "VALIDATION_ERROR", "could not read avatar file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	url, err := h.service.UploadAvatar(c.Request.Context(), middleware.UserID(c), file, fileHeader.Filename)
	if err != nil {
		if errors.Is(err, model.ErrProfileNotFound) {
			notFoundResponse(c, "create a profile before uploading an avatar")
			return
		}
		h.logger.Errorw("failed to upload avatar", "user_id", middleware.UserID(c), "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, model.AvatarResponse{AvatarURL: url})
}
