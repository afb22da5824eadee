package middleware

import (
	"github.com/gin-gonic/gin"

	"portfolio-api/cmd/api/auth"
	"portfolio-api/cmd/api/services"
	"portfolio-api/cmd/internal/logger"
)

// AuthMiddleware verifies the bearer token and stores the subject user id
// in the gin context under "user_id".
func AuthMiddleware(authSvc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractBearerToken(c)
		if err != nil {
			auth.AbortWithUnauthorized(c, err)
			return
		}

		userID, err := authSvc.ParseAccessToken(token)
		if err != nil {
			logger.Log.Debugf("token parse error: %v", err)
			auth.AbortWithUnauthorized(c, err)
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}
