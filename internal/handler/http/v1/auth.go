package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/guardline/sos_guardian_system/internal/auth"
	"github.com/sirupsen/logrus"
)

const userIDContextKey = "user_id"

// JWTAuthMiddleware - middleware для аутентификации по bearer-токену.
// Идентификатор пользователя кладется в контекст запроса.
func JWTAuthMiddleware(verifier auth.TokenVerifier, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			log.Warn("Bearer token missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization token required"})
			return
		}

		userID, err := verifier.Verify(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			log.Warn("Invalid bearer token provided")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(userIDContextKey, userID)
		c.Next()
	}
}

// callerID достает идентификатор аутентифицированного пользователя из контекста
func callerID(c *gin.Context) uuid.UUID {
	if v, ok := c.Get(userIDContextKey); ok {
		if id, ok := v.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.Nil
}
