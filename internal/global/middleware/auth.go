package middleware

import (
	"strings"

	"project-submission-system/internal/global/jwt"
	"project-submission-system/internal/global/response"

	"github.com/gin-gonic/gin"
)

func Auth(minRoleID int) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 获取 Authorization 头
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Fail(c, response.ErrTokenInvalid)
			c.Abort()
			return
		}

		// 检查 Bearer 前缀并提取 token
		if !strings.HasPrefix(authHeader, "Bearer ") {
			response.Fail(c, response.ErrTokenInvalid)
			c.Abort()
			return
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")

		if payload, valid := jwt.ParseToken(token); !valid {
			response.Fail(c, response.ErrTokenInvalid)
			c.Abort()
			return
		} else if payload.RoleID < minRoleID {
			response.Fail(c, response.ErrForbidden)
			c.Abort()
			return
		} else {
			c.Set("payload", payload)
		}
		c.Next()
	}
}
