package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/storefront-api/pkg/apperror"
	"github.com/oksasatya/storefront-api/pkg/helpers"
	"github.com/oksasatya/storefront-api/pkg/response"
)

const (
	CtxUserIDKey    = "userID"
	AuthTokenHeader = "auth-token"
)

// bearerToken reads the token from the auth-token header the login endpoint
// sets, falling back to a standard Authorization: Bearer header.
func bearerToken(c *gin.Context) string {
	if t := strings.TrimSpace(c.GetHeader(AuthTokenHeader)); t != "" {
		return t
	}
	h := c.GetHeader("Authorization")
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}

// Auth verifies the bearer token (signature and expiry) and injects the
// user ID into the Gin context.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.Fail(c, apperror.New(apperror.Unauthorized, "missing access token"))
			return
		}
		claims, err := jwt.ParseToken(token)
		if err != nil {
			response.Fail(c, apperror.Wrap(apperror.Unauthorized, "invalid access token", err))
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Next()
	}
}
