package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"organizame.app/api/common/logger"
	"organizame.app/api/internal/service"
)

type contextKey string

const ownerUIDContextKey contextKey = "owner_uid"

// RequireAuth validates the bearer token and stores the owner uid in the
// request context. Every data route sits behind it.
func RequireAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}

		ownerUID, err := authService.VerifyToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		ctx := context.WithValue(c.Request.Context(), ownerUIDContextKey, ownerUID)
		ctx = logger.WithLogFields(ctx, logger.LogFields{OwnerUID: &ownerUID})
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetOwnerUID returns the authenticated owner uid, or "" if the request
// did not pass RequireAuth.
func GetOwnerUID(ctx context.Context) string {
	uid, _ := ctx.Value(ownerUIDContextKey).(string)
	return uid
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	return header[len(prefix):], true
}
