package controllers

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/food-adda-backend/config"
	"github.com/vnkhanh/food-adda-backend/ws"
)

func HealthCheck(c *gin.Context) {
	// Mặc định trạng thái OK
	response := gin.H{
		"status":    "ok",
		"message":   "Service is healthy",
		"timestamp": time.Now().Unix(),
		"store":     "ok",
		"websocket": gin.H{
			"enabled": true,
			"stats":   ws.H.GetStats(),
		},
	}

	// Thử ghi vào thư mục dữ liệu
	probe := filepath.Join(config.Store.Dir, ".health")
	if err := os.MkdirAll(config.Store.Dir, 0o755); err != nil {
		response["store"] = "error: cannot create data dir"
		response["status"] = "degraded"
		c.JSON(http.StatusInternalServerError, response)
		return
	}
	if err := os.WriteFile(probe, []byte("ok"), 0o644); err != nil {
		response["store"] = "error: data dir not writable"
		response["status"] = "degraded"
		c.JSON(http.StatusInternalServerError, response)
		return
	}
	os.Remove(probe)

	// Trả về nếu mọi thứ ổn
	c.JSON(http.StatusOK, response)
}
