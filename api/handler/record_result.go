package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"ddoslab/internal/service"
)

// RecordResultReq 记录实验结果请求体，experiment_id取自路径
type RecordResultReq struct {
	AttackID        uint    `json:"attack_id" binding:"required"`
	IsDetected      bool    `json:"is_detected"`
	Confidence      float64 `json:"confidence"`
	DetectionTimeMs int     `json:"detection_time_ms"`
}

// RecordResult 记录实验结果处理器
func RecordResult(experimentService service.ExperimentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		experimentID, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		var req RecordResultReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"result":      "fail",
				"status_code": http.StatusBadRequest,
				"status_msg":  "Invalid request parameters",
			})
			return
		}

		result, err := experimentService.RecordResult(service.RecordResultReq{
			ExperimentID:    experimentID,
			AttackID:        req.AttackID,
			IsDetected:      req.IsDetected,
			Confidence:      req.Confidence,
			DetectionTimeMs: req.DetectionTimeMs,
		})
		if err != nil {
			log.Printf("记录实验结果失败: %v", err)
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
			"data":        result,
		})
	}
}

// GetResults 获取某个实验的所有结果
func GetResults(experimentService service.ExperimentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		experimentID, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		results, err := experimentService.ListResults(experimentID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{
				"result":      "fail",
				"status_code": http.StatusNotFound,
				"status_msg":  "Experiment not found",
			})
			return
		}

		c.JSON(http.StatusOK, results)
	}
}
