package models

import (
	"fmt"
	"time"
)

type FoodCategory string

const (
	CategoryBurgers  FoodCategory = "Burgers"
	CategoryPizza    FoodCategory = "Pizza"
	CategoryAsian    FoodCategory = "Asian"
	CategoryDrinks   FoodCategory = "Drinks"
	CategoryDesserts FoodCategory = "Desserts"
	CategoryCombos   FoodCategory = "Combos"
)

func (c FoodCategory) Valid() bool {
	switch c {
	case CategoryBurgers, CategoryPizza, CategoryAsian, CategoryDrinks, CategoryDesserts, CategoryCombos:
		return true
	}
	return false
}

// FoodItem là một món trong menu. JSON tag giữ nguyên tên field camelCase
// để đọc được các file dữ liệu cũ trong thư mục data/.
type FoodItem struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Category    FoodCategory `json:"category"`
	Image       string       `json:"image"`
	Price       float64      `json:"price"`
	Rating      float64      `json:"rating"`
	Description string       `json:"description"`
	Ingredients []string     `json:"ingredients"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

func (f *FoodItem) GetID() string { return f.ID }

func (f *FoodItem) SetID(id string) { f.ID = id }

func (f *FoodItem) GetCreatedAt() time.Time { return f.CreatedAt }

func (f *FoodItem) SetCreatedAt(t time.Time) { f.CreatedAt = t }

func (f *FoodItem) SetUpdatedAt(t time.Time) { f.UpdatedAt = t }

// Validate chạy khi load từ file: category lạ là dữ liệu hỏng.
func (f *FoodItem) Validate() error {
	if !f.Category.Valid() {
		return fmt.Errorf("category %q không hợp lệ (id %s)", f.Category, f.ID)
	}
	return nil
}
