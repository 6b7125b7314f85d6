package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"ddoslab/internal/service"
)

// DeleteModel 删除AI模型处理器
// 引用该模型的攻击和实验不会被删，引用字段由数据库置空
func DeleteModel(modelService service.AIModelService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		if err := modelService.Delete(id); err != nil {
			log.Printf("删除模型失败: %v", err)
			c.JSON(http.StatusNotFound, gin.H{
				"result":      "fail",
				"status_code": http.StatusNotFound,
				"status_msg":  err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"result":      "success",
			"status_code": http.StatusOK,
			"status_msg":  "操作成功",
		})
	}
}
