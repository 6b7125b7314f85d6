package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Auth 认证中间件
// websocket客户端没法设置header，所以也接受?token=查询参数
func Auth(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 从header里面获取token，格式为：Authorization: Bearer token
		authHeader := c.Request.Header.Get("Authorization")

		if authHeader == "Bearer "+token || c.Query("token") == token {
			c.Next()
			return
		}

		c.JSON(http.StatusUnauthorized, gin.H{
			"result":      "fail",
			"status_code": http.StatusUnauthorized,
			"status_msg":  "Unauthorized",
		})
		c.Abort()
	}
}
