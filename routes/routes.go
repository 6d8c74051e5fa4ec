package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/food-adda-backend/controllers"
	"github.com/vnkhanh/food-adda-backend/middleware"
	"github.com/vnkhanh/food-adda-backend/ws"
)

func SetupRouter(r *gin.Engine) *gin.Engine {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/health", controllers.HealthCheck)

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/login", controllers.Login)
		auth.GET("/me", middleware.AuthMiddleware(), controllers.Me)
		auth.POST("/change-password", middleware.AuthMiddleware(), controllers.ChangePassword)
	}

	// Trang public: menu + học viện + form đăng ký
	api.GET("/foods", controllers.GetFoods)
	api.GET("/foods/:id", controllers.GetFoodDetail)
	api.GET("/courses", controllers.GetCourses)
	api.GET("/courses/:id", controllers.GetCourseDetail)
	api.POST("/submissions", controllers.CreateSubmission)

	admin := api.Group("/admin")
	{
		admin.Use(middleware.AuthMiddleware())

		// Quản lý menu
		admin.POST("/foods", controllers.CreateFood)
		admin.PUT("/foods/:id", controllers.UpdateFood)
		admin.DELETE("/foods/:id", controllers.DeleteFood)

		// Quản lý khóa học
		admin.POST("/courses", controllers.CreateCourse)
		admin.PUT("/courses/:id", controllers.UpdateCourse)
		admin.DELETE("/courses/:id", controllers.DeleteCourse)

		// Đăng ký khóa học
		admin.GET("/submissions", controllers.GetSubmissions)
		admin.DELETE("/submissions/:id", controllers.DeleteSubmission)

		// Dashboard + upload ảnh
		admin.GET("/stats", controllers.GetStats)
		admin.POST("/upload", controllers.UploadImage)
	}

	r.GET("/ws/admin", ws.HandleAdminWebSocket)

	return r
}
