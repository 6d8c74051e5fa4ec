package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vnkhanh/food-adda-backend/utils"
)

// UploadImage nhận multipart field "image", đẩy lên Supabase Storage
// và trả về public URL để admin gắn vào món ăn / khóa học.
func UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Thiếu file image"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File phải là ảnh"})
		return
	}

	// Object path giữ lại tên file gốc dạng slug cho dễ nhận ra trong bucket,
	// thêm uuid để không trùng
	fileID := utils.SlugifyFilename(fileHeader.Filename) + "-" + uuid.NewString()

	url, err := utils.UploadImageToSupabase(fileHeader, fileID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload ảnh thất bại"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
