package middleware

import (
	"strings"

	"nurvo_backend/internal/util"
	"nurvo_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthMiddleware requires a valid bearer token and stores its claims under
// util.ContextUserKey.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString = strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		}

		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, secret)
		if err != nil {
			logger.Log.Debug("Rejected token",
				zap.String("path", c.FullPath()),
				zap.Error(err))
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(util.ContextUserKey, claims)
		c.Next()
	}
}

// CurrentUserID returns the id of the authenticated caller, or "".
func CurrentUserID(c *gin.Context) string {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		return ""
	}
	return claims.UserID
}
