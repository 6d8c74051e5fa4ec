package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/food-adda-backend/config"
	"github.com/vnkhanh/food-adda-backend/models"
	"github.com/vnkhanh/food-adda-backend/store"
)

type CreateFoodInput struct {
	Name        string              `json:"name" binding:"required"`
	Category    models.FoodCategory `json:"category" binding:"required"`
	Image       string              `json:"image" binding:"required"`
	Price       *float64            `json:"price" binding:"required"`
	Rating      float64             `json:"rating"`
	Description string              `json:"description" binding:"required"`
	Ingredients []string            `json:"ingredients"`
}

// GetFoods: danh sách menu, public.
func GetFoods(c *gin.Context) {
	foods, err := config.Store.Foods.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lấy danh sách món ăn"})
		return
	}
	c.JSON(http.StatusOK, foods)
}

// GetFoodDetail: chi tiết một món, public.
func GetFoodDetail(c *gin.Context) {
	id := c.Param("id")

	food, err := config.Store.Foods.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy món ăn"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể đọc món ăn"})
		return
	}
	c.JSON(http.StatusOK, food)
}

func CreateFood(c *gin.Context) {
	var input CreateFoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !input.Category.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category không hợp lệ"})
		return
	}
	if *input.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Giá không được âm"})
		return
	}

	food := &models.FoodItem{
		Name:        input.Name,
		Category:    input.Category,
		Image:       input.Image,
		Price:       *input.Price,
		Rating:      input.Rating,
		Description: input.Description,
		Ingredients: input.Ingredients,
	}
	// Giữ mặc định của bản cũ: rating 4.5, ingredients mảng rỗng
	if food.Rating == 0 {
		food.Rating = 4.5
	}
	if food.Ingredients == nil {
		food.Ingredients = []string{}
	}

	created, err := config.Store.Foods.Insert(food)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể tạo món ăn"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateFood là partial update: decode body đè lên bản ghi hiện tại,
// field không gửi giữ nguyên giá trị cũ.
func UpdateFood(c *gin.Context) {
	id := c.Param("id")

	updated, err := config.Store.Foods.Update(id, func(food *models.FoodItem) error {
		if err := c.ShouldBindJSON(food); err != nil {
			return errBadInput
		}
		if !food.Category.Valid() {
			return errBadInput
		}
		if food.Price < 0 {
			return errBadInput
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy món ăn"})
			return
		}
		if errors.Is(err, errBadInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Dữ liệu cập nhật không hợp lệ"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể cập nhật món ăn"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func DeleteFood(c *gin.Context) {
	id := c.Param("id")

	deleted, err := config.Store.Foods.Delete(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể xóa món ăn"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy món ăn"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Xóa món ăn thành công"})
}
