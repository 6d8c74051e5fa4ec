package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword mã hoá mật khẩu bằng bcrypt (cost mặc định).
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword so mật khẩu với hash đã lưu.
func CheckPassword(hashed, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}
