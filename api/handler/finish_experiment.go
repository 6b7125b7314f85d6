package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"ddoslab/internal/service"
)

// FinishExperiment 结束实验处理器，结束前会重算一次检出统计
func FinishExperiment(experimentService service.ExperimentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		experiment, err := experimentService.Finish(id)
		if err != nil {
			log.Printf("结束实验失败: %v", err)
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

// DeleteExperiment 删除实验处理器，实验结果会被级联删除
func DeleteExperiment(experimentService service.ExperimentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		if err := experimentService.Delete(id); err != nil {
			log.Printf("删除实验失败: %v", err)
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
