package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"ddoslab/internal/service"
)

// CreateAttack 记录攻击处理器
func CreateAttack(attackService service.AttackService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.RecordAttackReq

		// 绑定请求参数
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"result":      "fail",
				"status_code": http.StatusBadRequest,
				"status_msg":  "Invalid request parameters",
			})
			return
		}

		attack, err := attackService.Record(req)
		if err != nil {
			log.Printf("记录攻击失败: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{
				"result":      "fail",
				"status_code": http.StatusBadRequest,
				"status_msg":  err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"result":      "success",
			"status_code": http.StatusOK,
			"attack":      attack,
		})
	}
}
