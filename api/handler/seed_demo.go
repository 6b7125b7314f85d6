package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"ddoslab/internal/repository"
)

// SeedDemo 插入演示数据处理器，库里已有数据时什么都不做
func SeedDemo(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := repository.SeedDemoData(db); err != nil {
			log.Printf("插入演示数据失败: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"result":      "fail",
				"status_code": http.StatusInternalServerError,
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
