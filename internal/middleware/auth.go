package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fintrack-be/internal/jwt"
)

// UserIDKey is the gin context key under which the authenticated user's ID
// is stored for downstream handlers.
const UserIDKey = "userID"

// AuthMiddleware returns a Gin middleware that gates requests on a valid
// bearer token. On success the caller's user ID is attached to the
// request context; any failure rejects the request immediately.
func AuthMiddleware(jwtService *jwt.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "authorization bearer token missing",
			})
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "authorization bearer token missing",
			})
			c.Abort()
			return
		}

		userID, err := jwtService.ValidateToken(parts[1])
		if err != nil {
			if errors.Is(err, jwt.ErrMalformedSubject) {
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "failed to identify token subject",
				})
			} else {
				c.JSON(http.StatusUnauthorized, gin.H{
					"error": "token is invalid or expired",
				})
			}
			c.Abort()
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// CurrentUserID extracts the authenticated user's ID set by AuthMiddleware.
func CurrentUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(UserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	return userID, ok
}
