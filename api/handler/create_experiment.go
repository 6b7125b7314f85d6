package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"ddoslab/internal/service"
)

// CreateExperiment 创建实验处理器
func CreateExperiment(experimentService service.ExperimentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.CreateExperimentReq

		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"result":      "fail",
				"status_code": http.StatusBadRequest,
				"status_msg":  "Invalid request parameters",
			})
			return
		}

		experiment, err := experimentService.Create(req)
		if err != nil {
			log.Printf("创建实验失败: %v", err)
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
			"experiment":  experiment,
		})
	}
}
