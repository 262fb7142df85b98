package middleware

import (
	"net/http"
	"strings"

	"SketchShare/pkg/context"
	"SketchShare/pkg/jwt"
	"SketchShare/pkg/response"

	"github.com/gin-gonic/gin"
)

func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "缺少 Authorization")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Abort(c, http.StatusUnauthorized, "Authorization 格式错误")
			return
		}

		claims, err := jwt.ParseToken(secret, "access", parts[1])
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "凭证无效或已过期")
			return
		}

		// 同一份身份里带上用户ID与角色，后续不再二次解析
		c.Set(context.CtxUserID, claims.UserID)
		c.Set(context.CtxRoleID, claims.RoleID)

		c.Next()
	}
}
