// Package router provides profile module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fireteam/teamfinder/internal/profile/handler"
	"github.com/fireteam/teamfinder/internal/profile/repository"
	"github.com/fireteam/teamfinder/internal/profile/service"
	"github.com/fireteam/teamfinder/pkg/storage"
)

// RegisterRoutes registers profile module routes. All routes require auth;
// viewing another user's profile is public to signed-in users.
func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	store storage.ImageStorage,
	requireAuth gin.HandlerFunc,
	logger *zap.SugaredLogger,
) {
	repo := repository.New(db, logger)
	svc := service.New(repo, store, logger)
	h := handler.New(svc, logger)

	profile := r.Group("/api/profile", requireAuth)
	profile.GET("/me", h.Me)
	profile.GET("/:user_id", h.Get)
	profile.PUT("", h.Upsert)
	profile.POST("/avatar", h.UploadAvatar)
}
