package models

import "time"

// Admin là tài khoản quản trị. Chỉ lưu hash bcrypt, không bao giờ lưu
// mật khẩu gốc. Tag passwordHash phải giữ vì struct này cũng là format
// của file admins.json; controller chỉ trả về qua Public().
type Admin struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (a *Admin) GetID() string { return a.ID }

func (a *Admin) SetID(id string) { a.ID = id }

func (a *Admin) GetCreatedAt() time.Time { return a.CreatedAt }

func (a *Admin) SetCreatedAt(t time.Time) { a.CreatedAt = t }

// Admin không có updatedAt trong file dữ liệu cũ.
func (a *Admin) SetUpdatedAt(t time.Time) {}

// Public trả về bản an toàn để đưa vào response (không có passwordHash).
func (a *Admin) Public() map[string]any {
	return map[string]any{
		"id":       a.ID,
		"username": a.Username,
		"email":    a.Email,
	}
}
