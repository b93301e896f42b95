package middleware

import (
	"net/http"
	"strings"

	"barberbook/utils"

	"github.com/gin-gonic/gin"
)

// ContextStaffIDKey is where the authenticated staff ID lands in the
// gin context.
const ContextStaffIDKey = "staffID"

// StaffAuthMiddleware validates the bearer token issued at login and
// injects the staff ID into the request context. The login itself is a
// stand-in; this gate only keeps the dashboard off the public surface.
func StaffAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, "missing or malformed authorization header", "")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		staffID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "invalid or expired token", err.Error())
			c.Abort()
			return
		}

		c.Set(ContextStaffIDKey, staffID)
		c.Next()
	}
}
