package middleware

import (
	"mathquest_backend/internal/config"

	"github.com/gin-gonic/gin"
)

const userIDKey = "userID"

// DemoIdentity 未接入认证体系，统一注入配置的演示用户身份。
// 下游始终通过 CurrentUserID 取用户，后续换成真实认证时只需替换本中间件。
func DemoIdentity(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(userIDKey, cfg.Demo.UserID)
		c.Next()
	}
}

func CurrentUserID(c *gin.Context) uint {
	if v, ok := c.Get(userIDKey); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
