// Package router provides team module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fireteam/teamfinder/internal/team/handler"
	"github.com/fireteam/teamfinder/internal/team/repository"
	"github.com/fireteam/teamfinder/internal/team/service"
)

// RegisterRoutes registers team module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, requireAuth gin.HandlerFunc, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo, db, logger)
	h := handler.New(svc, logger)

	teams := r.Group("/api/teams", requireAuth)
	teams.POST("", h.Create)
	teams.GET("", h.List)
	teams.GET("/:id", h.Get)
	teams.GET("/invite/:code", h.ResolveInvite)
	teams.DELETE("/:id", h.Delete)
	teams.GET("/:id/members", h.Members)
	teams.POST("/:id/leave", h.Leave)
}
