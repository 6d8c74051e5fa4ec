package store

import (
	"github.com/vnkhanh/food-adda-backend/models"
)

// Store gom 4 collection của hệ thống, mỗi collection một file JSON
// dưới cùng một thư mục dữ liệu.
type Store struct {
	Dir string

	Foods       *Collection[*models.FoodItem]
	Courses     *Collection[*models.Course]
	Submissions *Collection[*models.FormSubmission]
	Admins      *Collection[*models.Admin]
}

func Open(dir string) *Store {
	return &Store{
		Dir:         dir,
		Foods:       NewCollection[*models.FoodItem](dir, "foods.json"),
		Courses:     NewCollection[*models.Course](dir, "courses.json"),
		Submissions: NewCollection[*models.FormSubmission](dir, "submissions.json"),
		Admins:      NewCollection[*models.Admin](dir, "admins.json"),
	}
}

// FindAdminByUsername trả về admin đầu tiên có username khớp.
func (s *Store) FindAdminByUsername(username string) (*models.Admin, error) {
	return s.Admins.Find(func(a *models.Admin) bool {
		return a.Username == username
	})
}
