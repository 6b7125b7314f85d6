package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"ddoslab/internal/service"
)

// CreateModel 注册AI模型处理器
func CreateModel(modelService service.AIModelService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.RegisterModelReq

		// 绑定请求参数
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"result":      "fail",
				"status_code": http.StatusBadRequest,
				"status_msg":  "Invalid request parameters",
			})
			return
		}

		aiModel, err := modelService.Register(req)
		if err != nil {
			log.Printf("注册模型失败: %v", err)
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
			"model":       aiModel,
		})
	}
}
