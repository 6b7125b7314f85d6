package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ddoslab/internal/repository"
	"ddoslab/internal/service"
)

// GetAttacks 分页获取攻击记录处理器
// 支持?page= ?page_size= ?attack_type=过滤
func GetAttacks(attackService service.AttackService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

		query := repository.PageQuery{
			Page:     page,
			PageSize: pageSize,
		}

		if attackType := c.Query("attack_type"); attackType != "" {
			query.Filters = map[string]interface{}{"attack_type = ?": attackType}
		}

		result, err := attackService.ListPage(query)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"total":   result.Total,
			"attacks": result.Items,
		})
	}
}
