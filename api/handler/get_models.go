package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ddoslab/internal/service"
)

// GetModels 获取AI模型列表处理器，?active=true只返回启用的模型
func GetModels(modelService service.AIModelService) gin.HandlerFunc {
	return func(c *gin.Context) {
		activeOnly := c.Query("active") == "true"

		aiModels, err := modelService.List(activeOnly)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, aiModels)
	}
}
