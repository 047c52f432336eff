package middleware

import (
	"newsdesk-admin/helper"
	"newsdesk-admin/services"

	"github.com/gin-gonic/gin"
)

var HTTPHelper = &helper.HTTPHelper{}

// AuthCookieName is the http-only session cookie set on login.
const AuthCookieName = "auth-token"

// AuthRequired gates the dashboard API behind the session cookie. The news
// and draft core never checks auth itself; being past this middleware is its
// precondition.
func AuthRequired(auth services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(AuthCookieName)
		if err != nil || token == "" {
			HTTPHelper.SendUnauthorizedError(c, "Authentication required", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		username, err := auth.VerifyToken(token)
		if err != nil {
			HTTPHelper.SendUnauthorizedError(c, "Invalid session", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		c.Set("username", username)
		c.Next()
	}
}
