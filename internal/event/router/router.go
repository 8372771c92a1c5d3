// Package router provides event module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fireteam/teamfinder/internal/event/handler"
	"github.com/fireteam/teamfinder/internal/event/repository"
	"github.com/fireteam/teamfinder/internal/event/service"
	"github.com/fireteam/teamfinder/pkg/storage"
)

// RegisterRoutes registers event module routes.
func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	store storage.ImageStorage,
	requireAuth gin.HandlerFunc,
	logger *zap.SugaredLogger,
) {
	repo := repository.New(db)
	svc := service.New(repo, store, logger)
	h := handler.New(svc, logger)

	events := r.Group("/api/events", requireAuth)
	events.GET("", h.List)
	events.POST("", h.Create)
}
