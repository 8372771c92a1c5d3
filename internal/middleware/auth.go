// Package middleware provides HTTP middleware functions.
package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	authModel "github.com/fireteam/teamfinder/internal/auth/model"
)

const (
	userIDKey    = "user_id"
	sessionIDKey = "session_id"
)

// SessionVerifier reports whether a session is still active.
// Implemented by the auth module's code store.
type SessionVerifier interface {
	SessionExists(ctx context.Context, sessionID string) (bool, error)
}

// UserID returns the authenticated user's ID, or "" before RequireAuth ran.
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

// SessionID returns the authenticated session's ID, or "" before RequireAuth ran.
func SessionID(c *gin.Context) string {
	return c.GetString(sessionIDKey)
}

// RequireAuth returns a middleware that verifies the Bearer token and checks
// that its session has not been ended by logout.
func RequireAuth(secret string, sessions SessionVerifier, logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			unauthenticated(c, "authentication required")
			return
		}

		claims := &jwt.RegisteredClaims{}
		_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || claims.Subject == "" || claims.ID == "" {
			unauthenticated(c, "invalid or expired token")
			return
		}

		active, err := sessions.SessionExists(c.Request.Context(), claims.ID)
		if err != nil {
			if errors.Is(err, authModel.ErrUnavailable) {
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"error": gin.H{
						"code":    "SERVICE_UNAVAILABLE",
						"message": "service temporarily unavailable",
					},
				})
				c.Abort()
				return
			}
			logger.Errorw("session lookup failed", "session_id", claims.ID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": gin.H{
					"code":    "INTERNAL_ERROR",
					"message": "internal server error",
				},
			})
			c.Abort()
			return
		}
		if !active {
			unauthenticated(c, "session has ended")
			return
		}

		c.Set(userIDKey, claims.Subject)
		c.Set(sessionIDKey, claims.ID)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	return header[len(prefix):], true
}

func unauthenticated(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"error": gin.H{
			"code":    "UNAUTHENTICATED",
			"message": message,
		},
	})
	c.Abort()
}
