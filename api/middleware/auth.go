package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"policy-portal/api/response"
	"policy-portal/service"
)

// AgentIDKey 鉴权通过后写入 gin.Context 的键
const AgentIDKey = "agent_id"

// Auth Bearer 令牌鉴权，失败统一 401
func Auth(authSvc *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		token = strings.TrimSpace(strings.TrimPrefix(token, "Bearer "))
		if token == "" {
			response.AuthFail(c, "未登录或令牌缺失")
			c.Abort()
			return
		}

		agent, err := authSvc.Authenticate(c.Request.Context(), token)
		if err != nil {
			response.AuthFail(c, "令牌无效或已过期")
			c.Abort()
			return
		}

		c.Set(AgentIDKey, agent.ID)
		c.Next()
	}
}

// AgentID 从上下文取当前代理人 ID，只在 Auth 之后的 handler 里调用
func AgentID(c *gin.Context) int64 {
	return c.GetInt64(AgentIDKey)
}
