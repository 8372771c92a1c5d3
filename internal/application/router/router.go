// Package router provides application module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fireteam/teamfinder/internal/application/handler"
	"github.com/fireteam/teamfinder/internal/application/repository"
	"github.com/fireteam/teamfinder/internal/application/service"
	teamRepository "github.com/fireteam/teamfinder/internal/team/repository"
)

// RegisterRoutes registers application module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, requireAuth gin.HandlerFunc, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	teams := teamRepository.New(db)
	svc := service.New(repo, teams, db, logger)
	h := handler.New(svc, logger)

	teamScoped := r.Group("/api/teams", requireAuth)
	teamScoped.POST("/:id/applications", h.Apply)
	teamScoped.GET("/:id/applications", h.ListForTeam)

	apps := r.Group("/api/applications", requireAuth)
	apps.GET("/mine", h.ListMine)
	apps.POST("/:id/approve", h.Approve)
	apps.POST("/:id/reject", h.Reject)
}
