package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseIDParam 解析路径里的数字ID，解析失败时已经写好400响应
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"result":      "fail",
			"status_code": http.StatusBadRequest,
			"status_msg":  "Invalid " + name,
		})
		return 0, false
	}
	return uint(id), true
}
