package models

import (
	"fmt"
	"time"
)

type CourseLevel string

const (
	LevelBeginner     CourseLevel = "Beginner"
	LevelIntermediate CourseLevel = "Intermediate"
	LevelAdvanced     CourseLevel = "Advanced"
)

func (l CourseLevel) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// CurriculumWeek: nội dung một tuần học trong khung chương trình.
type CurriculumWeek struct {
	Week   int      `json:"week"`
	Title  string   `json:"title"`
	Topics []string `json:"topics"`
}

// Course là một khóa học của học viện.
type Course struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	Instructor      string           `json:"instructor"`
	Duration        string           `json:"duration"`
	Level           CourseLevel      `json:"level"`
	Rating          float64          `json:"rating"`
	Students        int              `json:"students"`
	Price           float64          `json:"price"`
	Image           string           `json:"image"`
	Description     string           `json:"description"`
	LongDescription string           `json:"longDescription"`
	Highlights      []string         `json:"highlights"`
	Curriculum      []CurriculumWeek `json:"curriculum"`
	WhatYouLearn    []string         `json:"whatYouLearn"`
	Requirements    []string         `json:"requirements"`
	InstructorBio   string           `json:"instructorBio"`
	InstructorImage string           `json:"instructorImage"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

func (c *Course) GetID() string { return c.ID }

func (c *Course) SetID(id string) { c.ID = id }

func (c *Course) GetCreatedAt() time.Time { return c.CreatedAt }

func (c *Course) SetCreatedAt(t time.Time) { c.CreatedAt = t }

func (c *Course) SetUpdatedAt(t time.Time) { c.UpdatedAt = t }

// Validate chạy khi load từ file: level lạ là dữ liệu hỏng.
func (c *Course) Validate() error {
	if !c.Level.Valid() {
		return fmt.Errorf("level %q không hợp lệ (id %s)", c.Level, c.ID)
	}
	return nil
}
