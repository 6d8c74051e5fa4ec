package models

import "time"

// FormSubmission là một đăng ký khóa học. Tên khóa / giảng viên / giá được
// copy lại tại thời điểm đăng ký, không tham chiếu ngược về Course:
// khóa học bị sửa hay xóa sau đó thì bản đăng ký vẫn giữ nguyên.
type FormSubmission struct {
	ID           string    `json:"id"`
	CourseID     string    `json:"courseId"`
	CourseName   string    `json:"courseName"`
	Instructor   string    `json:"instructor"`
	Price        float64   `json:"price"`
	StudentName  string    `json:"studentName"`
	StudentEmail string    `json:"studentEmail"`
	StudentPhone string    `json:"studentPhone"`
	SubmittedAt  time.Time `json:"submittedAt"`
}

func (s *FormSubmission) GetID() string { return s.ID }

func (s *FormSubmission) SetID(id string) { s.ID = id }

func (s *FormSubmission) GetCreatedAt() time.Time { return s.SubmittedAt }

func (s *FormSubmission) SetCreatedAt(t time.Time) { s.SubmittedAt = t }

// Submission không có updatedAt, đây là bản ghi tại một thời điểm.
func (s *FormSubmission) SetUpdatedAt(t time.Time) {}
