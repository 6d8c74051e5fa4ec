package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/food-adda-backend/config"
	"github.com/vnkhanh/food-adda-backend/models"
	"github.com/vnkhanh/food-adda-backend/store"
)

type CreateCourseInput struct {
	Title           string                  `json:"title" binding:"required"`
	Instructor      string                  `json:"instructor" binding:"required"`
	Duration        string                  `json:"duration" binding:"required"`
	Level           models.CourseLevel      `json:"level" binding:"required"`
	Rating          float64                 `json:"rating"`
	Students        int                     `json:"students"`
	Price           *float64                `json:"price" binding:"required"`
	Image           string                  `json:"image"`
	Description     string                  `json:"description" binding:"required"`
	LongDescription string                  `json:"longDescription"`
	Highlights      []string                `json:"highlights"`
	Curriculum      []models.CurriculumWeek `json:"curriculum"`
	WhatYouLearn    []string                `json:"whatYouLearn"`
	Requirements    []string                `json:"requirements"`
	InstructorBio   string                  `json:"instructorBio"`
	InstructorImage string                  `json:"instructorImage"`
}

// GetCourses: danh sách khóa học của học viện, public.
func GetCourses(c *gin.Context) {
	courses, err := config.Store.Courses.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lấy danh sách khóa học"})
		return
	}
	c.JSON(http.StatusOK, courses)
}

func GetCourseDetail(c *gin.Context) {
	id := c.Param("id")

	course, err := config.Store.Courses.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy khóa học"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể đọc khóa học"})
		return
	}
	c.JSON(http.StatusOK, course)
}

func CreateCourse(c *gin.Context) {
	var input CreateCourseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !input.Level.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Level không hợp lệ"})
		return
	}
	if *input.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Giá không được âm"})
		return
	}

	course := &models.Course{
		Title:           input.Title,
		Instructor:      input.Instructor,
		Duration:        input.Duration,
		Level:           input.Level,
		Rating:          input.Rating,
		Students:        input.Students,
		Price:           *input.Price,
		Image:           input.Image,
		Description:     input.Description,
		LongDescription: input.LongDescription,
		Highlights:      input.Highlights,
		Curriculum:      input.Curriculum,
		WhatYouLearn:    input.WhatYouLearn,
		Requirements:    input.Requirements,
		InstructorBio:   input.InstructorBio,
		InstructorImage: input.InstructorImage,
	}
	if course.Highlights == nil {
		course.Highlights = []string{}
	}
	if course.Curriculum == nil {
		course.Curriculum = []models.CurriculumWeek{}
	}
	if course.WhatYouLearn == nil {
		course.WhatYouLearn = []string{}
	}
	if course.Requirements == nil {
		course.Requirements = []string{}
	}

	created, err := config.Store.Courses.Insert(course)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể tạo khóa học"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func UpdateCourse(c *gin.Context) {
	id := c.Param("id")

	updated, err := config.Store.Courses.Update(id, func(course *models.Course) error {
		if err := c.ShouldBindJSON(course); err != nil {
			return errBadInput
		}
		if !course.Level.Valid() {
			return errBadInput
		}
		if course.Price < 0 || course.Students < 0 {
			return errBadInput
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy khóa học"})
			return
		}
		if errors.Is(err, errBadInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Dữ liệu cập nhật không hợp lệ"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể cập nhật khóa học"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteCourse xóa khóa học. Các bản đăng ký đã nộp cho khóa này vẫn
// giữ nguyên (submission là bản chụp tại thời điểm đăng ký).
func DeleteCourse(c *gin.Context) {
	id := c.Param("id")

	deleted, err := config.Store.Courses.Delete(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể xóa khóa học"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy khóa học"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Xóa khóa học thành công"})
}
