package router

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kenyaamazon/storefront-api/pkg/global"
)

// AdminRequired gates the admin surface on the mock session role. This is
// demo-grade access control: the role was asserted at login, not verified.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, global.ErrorResponse("Session token required", []global.ValidationError{
				{Field: "X-Session-Token", Message: "session token header is required", Code: "required"},
			}))
			c.Abort()
			return
		}

		user, ok := Sessions.Get(token)
		if !ok {
			c.JSON(http.StatusUnauthorized, global.ErrorResponse("Unknown session", nil))
			c.Abort()
			return
		}

		if !user.IsAdmin() {
			c.JSON(http.StatusForbidden, global.ErrorResponse("Admin role required", nil))
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Next()
	}
}

func sessionToken(c *gin.Context) string {
	if token := c.GetHeader("X-Session-Token"); token != "" {
		return token
	}
	return strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
}
