// Package router provides auth module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fireteam/teamfinder/internal/auth/handler"
	"github.com/fireteam/teamfinder/internal/auth/repository"
	"github.com/fireteam/teamfinder/internal/auth/service"
	"github.com/fireteam/teamfinder/internal/config"
	profileRepository "github.com/fireteam/teamfinder/internal/profile/repository"
)

// RegisterRoutes registers auth module routes.
func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	codes repository.CodeStore,
	requireAuth gin.HandlerFunc,
	cfg config.AuthConfig,
	logger *zap.SugaredLogger,
) {
	users := repository.NewUserRepository(db)
	profiles := profileRepository.New(db, logger)
	sender := service.NewLogSender(logger)
	svc := service.New(users, codes, profiles, sender, cfg, logger)
	h := handler.New(svc, logger)

	auth := r.Group("/api/auth")
	auth.POST("/otp/request", h.RequestCode)
	auth.POST("/otp/verify", h.VerifyCode)
	auth.GET("/google", h.GoogleAuth)
	auth.GET("/google/callback", h.GoogleCallback)
	auth.POST("/logout", requireAuth, h.Logout)
}
