package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"greenbook/internal/pkg/jwt"
	"greenbook/pkg/constants"
	pkgErrors "greenbook/pkg/errors"
	"greenbook/pkg/utils"
)

// AuthMiddleware JWT认证中间件
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			utils.Error(c, pkgErrors.New(pkgErrors.CodeUnauthorized, "缺少Authorization Header"))
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, constants.HeaderBearerPrefix) {
			utils.Error(c, pkgErrors.New(pkgErrors.CodeUnauthorized, "Authorization格式错误"))
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, constants.HeaderBearerPrefix)

		claims, err := jwt.ValidateToken(token)
		if err != nil {
			utils.Error(c, err)
			c.Abort()
			return
		}

		// 只接受 AccessToken
		if claims.Type != constants.JWTTypeAccess {
			utils.Error(c, pkgErrors.New(pkgErrors.CodeUnauthorized, "无效的Token类型"))
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUser, claims)
		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Set(constants.ContextKeyEmail, claims.Email)

		c.Next()
	}
}

// CurrentUserID 当前调用者的内部用户ID
func CurrentUserID(c *gin.Context) string {
	return c.GetString(constants.ContextKeyUserID)
}

// CurrentEmail 当前调用者的邮箱
func CurrentEmail(c *gin.Context) string {
	return c.GetString(constants.ContextKeyEmail)
}
