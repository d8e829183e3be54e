package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blogdeck/cmd/api/auth"
	"blogdeck/cmd/internal/logger"
)

// Gin context keys set by AdminAuthMiddleware.
const (
	CtxUserID = "user_id"
	CtxRole   = "role"
)

// TokenParser validates an access token and returns the user id and role.
type TokenParser interface {
	Parse(token string) (int64, string, error)
}

// AdminAuthMiddleware 는 요청 헤더의 JWT를 검증하고, role이 'admin'인지 확인합니다.
// 검증된 사용자 id는 bulk 액션의 항목별 권한 판정에 사용된다.
func AdminAuthMiddleware(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractBearerToken(c)
		if err != nil {
			auth.AbortWithUnauthorized(c, err)
			return
		}

		userID, role, err := parser.Parse(token)
		if err != nil {
			logger.Log.Warnf("token parse error: %v", err)
			auth.AbortWithUnauthorized(c, err)
			return
		}

		if role != auth.RoleAdmin {
			logger.Log.Warnf("access denied: user %d has role %s, want admin", userID, role)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden_insufficient_permissions"})
			return
		}

		c.Set(CtxUserID, userID)
		c.Set(CtxRole, role)

		c.Next()
	}
}

// CurrentUserID returns the authenticated admin's user id, 0 when absent.
func CurrentUserID(c *gin.Context) int64 {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0
	}
	id, _ := v.(int64)
	return id
}
