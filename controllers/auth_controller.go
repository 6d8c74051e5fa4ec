package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/food-adda-backend/config"
	"github.com/vnkhanh/food-adda-backend/models"
	"github.com/vnkhanh/food-adda-backend/services"
	"github.com/vnkhanh/food-adda-backend/store"
	"github.com/vnkhanh/food-adda-backend/utils"
)

// ====== INPUT STRUCTS ======
type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordInput struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

// ====== HANDLERS ======
func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := services.AuthenticateAdmin(config.Store, input.Username, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			// Không phân biệt sai username hay sai mật khẩu
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Tên đăng nhập hoặc mật khẩu không đúng"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể đăng nhập"})
		return
	}

	admin, err := config.Store.FindAdminByUsername(input.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể đăng nhập"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Đăng nhập thành công",
		"token":   token,
		"admin":   admin.Public(),
	})
}

// Me trả về thông tin admin theo token hiện tại.
func Me(c *gin.Context) {
	adminID := c.GetString("admin_id")

	admin, err := config.Store.Admins.Get(adminID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy tài khoản"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể đọc tài khoản"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"admin": admin.Public()})
}

// Đổi mật khẩu
func ChangePassword(c *gin.Context) {
	adminID := c.GetString("admin_id")

	var input ChangePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Lấy admin hiện tại
	admin, err := config.Store.Admins.Get(adminID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tài khoản không tồn tại"})
		return
	}

	// Kiểm tra mật khẩu cũ
	if !utils.CheckPassword(admin.PasswordHash, input.OldPassword) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Mật khẩu cũ không đúng"})
		return
	}

	// Mã hoá mật khẩu mới
	hashed, err := utils.HashPassword(input.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể mã hoá mật khẩu mới"})
		return
	}

	if _, err := config.Store.Admins.Update(adminID, func(a *models.Admin) error {
		a.PasswordHash = hashed
		return nil
	}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi khi cập nhật mật khẩu"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Đổi mật khẩu thành công",
	})
}
