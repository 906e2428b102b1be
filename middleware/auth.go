package middleware

import (
	"Landmark/pkg/context"
	"Landmark/pkg/jwt"
	"Landmark/pkg/response"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Auth 校验 Bearer access token，把用户 ID 写入上下文
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "Missing Authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Abort(c, http.StatusUnauthorized, "Malformed Authorization header")
			return
		}

		claims, err := jwt.ParseToken(secret, jwt.TypeAccess, parts[1])
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}
		if claims.UserID == 0 {
			response.Abort(c, http.StatusUnauthorized, "Invalid token subject")
			return
		}

		c.Set(context.CtxUserID, claims.UserID)
		c.Next()
	}
}
