package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound: không có bản ghi nào khớp id
	ErrNotFound = errors.New("không tìm thấy bản ghi")
)

// Record là contract tối thiểu để Collection quản lý id và timestamps.
// Mỗi model trong models/ tự implement (xem models/food.go, ...).
type Record interface {
	GetID() string
	SetID(id string)
	GetCreatedAt() time.Time
	SetCreatedAt(t time.Time)
	SetUpdatedAt(t time.Time)
}

// Collection lưu một mảng JSON trong một file riêng (foods.json, courses.json, ...).
// Mọi thao tác ghi đều là đọc-sửa-ghi toàn bộ file, mutex đảm bảo
// hai writer không ghi đè lẫn nhau.
type Collection[T Record] struct {
	path string
	mu   sync.Mutex
}

func NewCollection[T Record](dir, filename string) *Collection[T] {
	return &Collection[T]{path: filepath.Join(dir, filename)}
}

// Validator: model nào có field enum thì tự kiểm tra khi load từ file,
// bản ghi bị sửa tay sai giá trị không được lọt vào hệ thống.
type Validator interface {
	Validate() error
}

// load đọc toàn bộ collection. File chưa tồn tại => collection rỗng
// (lần chạy đầu tiên). File tồn tại nhưng không parse được => lỗi,
// không được âm thầm coi là mất dữ liệu.
func (c *Collection[T]) load() ([]T, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("không đọc được %s: %w", c.path, err)
	}
	if len(data) == 0 {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("dữ liệu %s bị hỏng: %w", c.path, err)
	}
	for _, item := range items {
		if v, ok := any(item).(Validator); ok {
			if err := v.Validate(); err != nil {
				return nil, fmt.Errorf("dữ liệu %s bị hỏng: %w", c.path, err)
			}
		}
	}
	return items, nil
}

// save ghi lại toàn bộ collection. Lỗi ghi phải trả về cho caller,
// mutation chưa ghi xuống đĩa thì chưa tính là thành công.
func (c *Collection[T]) save(items []T) error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("không tạo được thư mục dữ liệu: %w", err)
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("không ghi được %s: %w", c.path, err)
	}
	return nil
}

// List trả về toàn bộ bản ghi theo thứ tự insert.
func (c *Collection[T]) List() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load()
}

// Get trả về bản ghi có id khớp, hoặc ErrNotFound.
func (c *Collection[T]) Get(id string) (T, error) {
	return c.Find(func(item T) bool { return item.GetID() == id })
}

// Find trả về bản ghi đầu tiên thỏa match, hoặc ErrNotFound.
func (c *Collection[T]) Find(match func(T) bool) (T, error) {
	var zero T
	items, err := c.List()
	if err != nil {
		return zero, err
	}
	for _, item := range items {
		if match(item) {
			return item, nil
		}
	}
	return zero, ErrNotFound
}

// Count đếm số bản ghi (phục vụ dashboard stats).
func (c *Collection[T]) Count() (int, error) {
	items, err := c.List()
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

// Insert gán id mới + timestamps rồi append vào cuối collection.
// Caller không được tự đặt id/createdAt/updatedAt, store luôn ghi đè.
func (c *Collection[T]) Insert(item T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	items, err := c.load()
	if err != nil {
		return zero, err
	}

	now := time.Now().UTC()
	item.SetID(uuid.NewString())
	item.SetCreatedAt(now)
	item.SetUpdatedAt(now)

	items = append(items, item)
	if err := c.save(items); err != nil {
		return zero, err
	}
	return item, nil
}

// Update tìm bản ghi theo id rồi gọi apply để merge các field mới lên đó
// (controller decode JSON body thẳng vào bản ghi, field không gửi giữ nguyên).
// id và createdAt luôn được khôi phục sau apply nên payload không thể đổi chúng.
func (c *Collection[T]) Update(id string, apply func(item T) error) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	items, err := c.load()
	if err != nil {
		return zero, err
	}

	for i, item := range items {
		if item.GetID() != id {
			continue
		}
		createdAt := item.GetCreatedAt()
		if err := apply(item); err != nil {
			return zero, err
		}
		item.SetID(id)
		item.SetCreatedAt(createdAt)
		item.SetUpdatedAt(time.Now().UTC())

		items[i] = item
		if err := c.save(items); err != nil {
			return zero, err
		}
		return item, nil
	}
	return zero, ErrNotFound
}

// Delete xóa bản ghi theo id. Không khớp bản ghi nào thì trả về false
// và không ghi file (không có gì thay đổi).
func (c *Collection[T]) Delete(id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load()
	if err != nil {
		return false, err
	}

	kept := items[:0:0]
	for _, item := range items {
		if item.GetID() != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return false, nil
	}
	if err := c.save(kept); err != nil {
		return false, err
	}
	return true, nil
}
