// Package handler provides HTTP handlers for event endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fireteam/teamfinder/internal/event/model"
	"github.com/fireteam/teamfinder/internal/event/service"
	"github.com/fireteam/teamfinder/internal/middleware"
)

// maxBrochureSize bounds brochure uploads to 10 MiB.
const maxBrochureSize = 10 << 20

// Handler handles HTTP requests for event endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new event handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// List handles GET /events.
func (h *Handler) List(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			errorResponse(c, "VALIDATION_ERROR", "limit must be a non-negative integer", http.StatusBadRequest)
			return
		}
		limit = v
	}

	events, err := h.service.List(c.Request.Context(), limit)
	if err != nil {
		h.logger.Errorw("failed to list events", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": events})
}

// Create handles POST /events as a multipart form with an optional
// "brochure" image field.
func (h *Handler) Create(c *gin.Context) {
	var req model.CreateEventRequest
	if err := c.ShouldBind(&req); err != nil {
		errorResponse(c, "VALIDATION_ERROR", "title and description are required", http.StatusBadRequest)
		return
	}

	var brochure *service.Brochure
	if fileHeader, err := c.FormFile("brochure"); err == nil {
		if fileHeader.Size > maxBrochureSize {
			errorResponse(c, "VALIDATION_ERROR", "brochure exceeds the 10MB limit", http.StatusBadRequest)
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			errorResponse(c, "VALIDATION_ERROR", "could not read brochure file", http.StatusBadRequest)
			return
		}
		defer file.Close()
		brochure = &service.Brochure{Reader: file, FileName: fileHeader.Filename}
	}

	event, err := h.service.Create(c.Request.Context(), middleware.UserID(c), &req, brochure)
	if err != nil {
		if errors.Is(err, model.ErrInvalidEventDate) {
			errorResponse(c, "VALIDATION_ERROR", "event_date must be RFC 3339", http.StatusBadRequest)
			return
		}
		h.logger.Errorw("failed to create event", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, event)
}
