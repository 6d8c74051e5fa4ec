package config

import (
	"github.com/vnkhanh/food-adda-backend/models"
	"github.com/vnkhanh/food-adda-backend/services"
	"github.com/vnkhanh/food-adda-backend/store"
)

// SeedDefaultData tạo dữ liệu mẫu khi collection còn trống: 3 món ăn,
// 1 khóa học và tài khoản admin mặc định. Collection đã có dữ liệu
// thì giữ nguyên.
func SeedDefaultData(db *store.Store) error {
	foods, err := db.Foods.List()
	if err != nil {
		return err
	}
	if len(foods) == 0 {
		for _, food := range defaultFoods() {
			if _, err := db.Foods.Insert(food); err != nil {
				return err
			}
		}
	}

	courses, err := db.Courses.List()
	if err != nil {
		return err
	}
	if len(courses) == 0 {
		if _, err := db.Courses.Insert(defaultCourse()); err != nil {
			return err
		}
	}

	admins, err := db.Admins.List()
	if err != nil {
		return err
	}
	if len(admins) == 0 {
		// Mật khẩu mặc định, đổi ngay sau lần đăng nhập đầu tiên
		if _, err := services.CreateAdmin(db, "admin", "admin@foodadda.com", "admin123"); err != nil {
			return err
		}
	}

	return nil
}

func defaultFoods() []*models.FoodItem {
	return []*models.FoodItem{
		{
			Name:        "Classic Burger",
			Category:    models.CategoryBurgers,
			Image:       "https://images.pexels.com/photos/1639557/pexels-photo-1639557.jpeg?auto=compress&cs=tinysrgb&w=500&h=300&dpr=1",
			Price:       12.99,
			Rating:      4.8,
			Description: "Juicy beef patty with lettuce, tomato, cheese, and our special sauce",
			Ingredients: []string{"Beef Patty", "Lettuce", "Tomato", "Cheese", "Special Sauce"},
		},
		{
			Name:        "Margherita Pizza",
			Category:    models.CategoryPizza,
			Image:       "https://images.pexels.com/photos/315755/pexels-photo-315755.jpeg?auto=compress&cs=tinysrgb&w=500&h=300&dpr=1",
			Price:       14.99,
			Rating:      4.9,
			Description: "Fresh mozzarella, tomato sauce, and basil on crispy thin crust",
			Ingredients: []string{"Mozzarella", "Tomato Sauce", "Fresh Basil", "Olive Oil"},
		},
		{
			Name:        "Chicken Biryani",
			Category:    models.CategoryAsian,
			Image:       "https://images.pexels.com/photos/2474661/pexels-photo-2474661.jpeg?auto=compress&cs=tinysrgb&w=500&h=300&dpr=1",
			Price:       16.99,
			Rating:      4.7,
			Description: "Aromatic basmati rice with tender chicken and traditional spices",
			Ingredients: []string{"Basmati Rice", "Chicken", "Saffron", "Spices", "Yogurt"},
		},
	}
}

func defaultCourse() *models.Course {
	return &models.Course{
		Title:       "Basic Cooking Fundamentals",
		Instructor:  "Chef Maria Rodriguez",
		Duration:    "8 weeks",
		Level:       models.LevelBeginner,
		Rating:      4.9,
		Students:    1247,
		Price:       299,
		Image:       "https://images.pexels.com/photos/2253643/pexels-photo-2253643.jpeg?auto=compress&cs=tinysrgb&w=800&h=400&dpr=1",
		Description: "Master the essential cooking techniques, knife skills, and fundamental recipes that every home cook should know.",
		LongDescription: "This foundational course is perfect for beginners who want to build a strong base in cooking. " +
			"You'll learn proper knife techniques, understanding of ingredients, basic cooking methods, and essential recipes " +
			"that form the backbone of great cooking.",
		Highlights: []string{
			"Professional knife skills", "Basic cooking techniques", "Essential recipes",
			"Food safety", "Kitchen organization", "Ingredient knowledge",
		},
		Curriculum: []models.CurriculumWeek{
			{
				Week:   1,
				Title:  "Kitchen Setup & Knife Skills",
				Topics: []string{"Kitchen organization", "Knife types and uses", "Basic cutting techniques", "Safety protocols"},
			},
			{
				Week:   2,
				Title:  "Cooking Methods & Heat Control",
				Topics: []string{"Sautéing", "Roasting", "Braising", "Understanding heat levels"},
			},
		},
		WhatYouLearn: []string{
			"Professional knife skills and safety",
			"Essential cooking techniques and methods",
			"How to build flavors and season properly",
			"Understanding ingredients and their properties",
		},
		Requirements: []string{
			"Basic kitchen equipment (knives, cutting board, pots, pans)",
			"Access to a stove and oven",
			"Willingness to practice and learn",
			"No prior cooking experience required",
		},
		InstructorBio:   "Chef Maria Rodriguez has over 15 years of experience in professional kitchens and culinary education.",
		InstructorImage: "https://images.pexels.com/photos/1239291/pexels-photo-1239291.jpeg?auto=compress&cs=tinysrgb&w=200&h=200&dpr=1",
	}
}
