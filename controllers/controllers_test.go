package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/vnkhanh/food-adda-backend/config"
	"github.com/vnkhanh/food-adda-backend/routes"
	"github.com/vnkhanh/food-adda-backend/services"
	"github.com/vnkhanh/food-adda-backend/store"
)

// setupRouter dựng router trên một store tạm, mỗi test một thư mục dữ liệu riêng.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	config.Store = store.Open(t.TempDir())

	r := gin.New()
	return routes.SetupRouter(r)
}

// adminToken seed tài khoản admin mặc định và đăng nhập lấy token.
func adminToken(t *testing.T) string {
	t.Helper()
	_, err := services.CreateAdmin(config.Store, "admin", "admin@foodadda.com", "admin123")
	require.NoError(t, err)

	token, err := services.AuthenticateAdmin(config.Store, "admin", "admin123")
	require.NoError(t, err)
	return token
}

// doJSON gửi một request JSON (token rỗng = request public).
func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, w.Code, "body: %s", w.Body.String())
}
