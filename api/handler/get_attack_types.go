package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ddoslab/internal/service"
)

// GetAttackTypes 获取所有支持的攻击类型
func GetAttackTypes(attackService service.AttackService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, attackService.Types())
	}
}
