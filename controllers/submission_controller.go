package controllers

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/food-adda-backend/config"
	"github.com/vnkhanh/food-adda-backend/models"
	"github.com/vnkhanh/food-adda-backend/utils"
	"github.com/vnkhanh/food-adda-backend/ws"
)

type CreateSubmissionInput struct {
	CourseID     string   `json:"courseId" binding:"required"`
	CourseName   string   `json:"courseName" binding:"required"`
	Instructor   string   `json:"instructor" binding:"required"`
	Price        *float64 `json:"price" binding:"required"`
	StudentName  string   `json:"studentName" binding:"required"`
	StudentEmail string   `json:"studentEmail" binding:"required,email"`
	StudentPhone string   `json:"studentPhone"`
}

// GetSubmissions: danh sách đăng ký, chỉ admin xem được.
func GetSubmissions(c *gin.Context) {
	submissions, err := config.Store.Submissions.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lấy danh sách đăng ký"})
		return
	}
	c.JSON(http.StatusOK, submissions)
}

// CreateSubmission: form đăng ký khóa học từ trang public.
// Thông tin khóa học được chụp lại tại thời điểm nộp, không join ngược.
func CreateSubmission(c *gin.Context) {
	var input CreateSubmissionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	submission := &models.FormSubmission{
		CourseID:     input.CourseID,
		CourseName:   input.CourseName,
		Instructor:   input.Instructor,
		Price:        *input.Price,
		StudentName:  input.StudentName,
		StudentEmail: input.StudentEmail,
		StudentPhone: input.StudentPhone,
	}

	created, err := config.Store.Submissions.Insert(submission)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lưu đăng ký"})
		return
	}

	// Đẩy realtime cho dashboard admin đang mở
	ws.BroadcastSubmissionCreated(created)

	// Báo mail cho admin (không chặn luồng)
	if adminEmail := os.Getenv("ADMIN_EMAIL"); adminEmail != "" {
		go func() {
			subject := "Food Adda Academy: đăng ký mới từ " + created.StudentName
			body := fmt.Sprintf(`
			<h3>Có học viên mới đăng ký khóa học</h3>
			<p><b>Khóa học:</b> %s (%s)<br>
			<b>Học viên:</b> %s<br>
			<b>Email:</b> %s<br>
			<b>SĐT:</b> %s</p>
			<hr>
			<p><i>Đây là email tự động, vui lòng không trả lời.</i></p>
			`, created.CourseName, created.Instructor, created.StudentName, created.StudentEmail, created.StudentPhone)
			if err := utils.SendEmail(adminEmail, subject, body); err != nil {
				// In log lỗi, không ảnh hưởng đến API chính
				log.Println("Lỗi gửi email:", err)
			}
		}()
	}

	c.JSON(http.StatusCreated, created)
}

// DeleteSubmission cho admin dọn các đăng ký rác.
func DeleteSubmission(c *gin.Context) {
	id := c.Param("id")

	deleted, err := config.Store.Submissions.Delete(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể xóa đăng ký"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy đăng ký"})
		return
	}

	ws.BroadcastSubmissionsChanged()
	c.JSON(http.StatusOK, gin.H{"message": "Xóa đăng ký thành công"})
}
