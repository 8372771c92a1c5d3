// Package router provides dashboard module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fireteam/teamfinder/internal/dashboard/handler"
	"github.com/fireteam/teamfinder/internal/dashboard/repository"
	"github.com/fireteam/teamfinder/internal/dashboard/service"
)

// RegisterRoutes registers dashboard module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, requireAuth gin.HandlerFunc, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	r.GET("/api/dashboard", requireAuth, h.Get)
}
