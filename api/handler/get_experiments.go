package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ddoslab/internal/service"
)

// GetExperiments 获取实验列表处理器
func GetExperiments(experimentService service.ExperimentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		experiments, err := experimentService.List()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, experiments)
	}
}

// GetExperiment 获取单个实验处理器
func GetExperiment(experimentService service.ExperimentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		experiment, err := experimentService.GetByID(id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{
				"result":      "fail",
				"status_code": http.StatusNotFound,
				"status_msg":  "Experiment not found",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"experiment":     experiment,
			"detection_rate": experiment.DetectionRate(),
		})
	}
}
