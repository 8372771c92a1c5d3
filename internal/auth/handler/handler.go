// Package handler provides HTTP handlers for auth endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fireteam/teamfinder/internal/auth/model"
	"github.com/fireteam/teamfinder/internal/auth/service"
	"github.com/fireteam/teamfinder/internal/middleware"
)

// Handler handles HTTP requests for auth endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new auth handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// RequestCode handles POST /auth/request-code.
func (h *Handler) RequestCode(c *gin.Context) {
	var req model.RequestCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "VALIDATION_ERROR", "a valid email is required", http.StatusBadRequest)
		return
	}

	err := h.service.RequestCode(c.Request.Context(), req.Email)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrEmailNotAllowed):
			errorResponse(c, "VALIDATION_ERROR", "email domain is not allowed", http.StatusBadRequest)
		case errors.Is(err, model.ErrUnavailable):
			errorResponse(c, "SERVICE_UNAVAILABLE", "service temporarily unavailable", http.StatusServiceUnavailable)
		default:
			h.logger.Errorw("failed to request code", "email", req.Email, "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "code sent"})
}

// VerifyCode handles POST /auth/verify-code.
func (h *Handler) VerifyCode(c *gin.Context) {
	var req model.VerifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "VALIDATION_ERROR", "email and a 6-digit code are required", http.StatusBadRequest)
		return
	}

	resp, err := h.service.VerifyCode(c.Request.Context(), req.Email, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNoCodeRequested):
			errorResponse(c, "UNAUTHENTICATED", "no active code for this email", http.StatusUnauthorized)
		case errors.Is(err, model.ErrCodeMismatch):
			errorResponse(c, "UNAUTHENTICATED", "invalid code", http.StatusUnauthorized)
		case errors.Is(err, model.ErrUnavailable):
			errorResponse(c, "SERVICE_UNAVAILABLE", "service temporarily unavailable", http.StatusServiceUnavailable)
		default:
			h.logger.Errorw("failed to verify code", "email", req.Email, "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GoogleAuth handles GET /auth/google by redirecting to the consent page.
func (h *Handler) GoogleAuth(c *gin.Context) {
	state := c.Query("state")
	c.Redirect(http.StatusTemporaryRedirect, h.service.GoogleAuthURL(state))
}

// GoogleCallback handles GET /auth/google/callback.
func (h *Handler) GoogleCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		errorResponse(c, "VALIDATION_ERROR", "code parameter is required", http.StatusBadRequest)
		return
	}

	resp, err := h.service.GoogleCallback(c.Request.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrEmailNotAllowed):
			errorResponse(c, "VALIDATION_ERROR", "email domain is not allowed", http.StatusBadRequest)
		case errors.Is(err, model.ErrOAuthExchange):
			errorResponse(c, "UNAUTHENTICATED", "oauth authorization failed", http.StatusUnauthorized)
		case errors.Is(err, model.ErrUnavailable):
			errorResponse(c, "SERVICE_UNAVAILABLE", "service temporarily unavailable", http.StatusServiceUnavailable)
		default:
			h.logger.Errorw("oauth callback failed", "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Logout handles POST /auth/logout.
func (h *Handler) Logout(c *gin.Context) {
	sessionID := middleware.SessionID(c)
	if sessionID == "" {
		errorResponse(c, "UNAUTHENTICATED", "authentication required", http.StatusUnauthorized)
		return
	}

	if err := h.service.Logout(c.Request.Context(), sessionID); err != nil {
		if errors.Is(err, model.ErrUnavailable) {
			errorResponse(c, "SERVICE_UNAVAILABLE", "service temporarily unavailable", http.StatusServiceUnavailable)
			return
		}
		h.logger.Errorw("failed to log out", "session_id", sessionID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
