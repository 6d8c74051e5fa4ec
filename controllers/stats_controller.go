package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/food-adda-backend/config"
)

// GetStats: số liệu cho dashboard admin (số món, số khóa, số đăng ký).
func GetStats(c *gin.Context) {
	foods, err := config.Store.Foods.Count()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể đếm món ăn"})
		return
	}
	courses, err := config.Store.Courses.Count()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể đếm khóa học"})
		return
	}
	submissions, err := config.Store.Submissions.Count()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể đếm đăng ký"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"foods":       foods,
		"courses":     courses,
		"submissions": submissions,
	})
}
