package services

import (
	"errors"
	"fmt"

	"github.com/vnkhanh/food-adda-backend/models"
	"github.com/vnkhanh/food-adda-backend/store"
	"github.com/vnkhanh/food-adda-backend/utils"
)

// ErrInvalidCredentials dùng chung cho cả "không có user" lẫn "sai mật khẩu"
// để không lộ ra username nào tồn tại.
var ErrInvalidCredentials = errors.New("tên đăng nhập hoặc mật khẩu không đúng")

// AuthenticateAdmin kiểm tra cặp username/password và trả về JWT 24h.
func AuthenticateAdmin(db *store.Store, username, password string) (string, error) {
	admin, err := db.FindAdminByUsername(username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if !utils.CheckPassword(admin.PasswordHash, password) {
		return "", ErrInvalidCredentials
	}
	return utils.GenerateToken(admin.ID, admin.Username)
}

// CreateAdmin tạo tài khoản quản trị mới, hash mật khẩu trước khi lưu.
// Username đã tồn tại thì từ chối (lookup chỉ trả về bản ghi đầu tiên,
// nên không được để hai admin trùng username).
func CreateAdmin(db *store.Store, username, email, password string) (*models.Admin, error) {
	if _, err := db.FindAdminByUsername(username); err == nil {
		return nil, fmt.Errorf("username %q đã tồn tại", username)
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	return db.Admins.Insert(&models.Admin{
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
	})
}
