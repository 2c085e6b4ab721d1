package models

import "gorm.io/gorm"

type Lesson struct {
	gorm.Model
	Title    string `json:"title" gorm:"not null"`
	Content  string `json:"content"`
	CourseID uint   `json:"courseId" gorm:"index;not null"`
	Course   Course `json:"course" gorm:"foreignKey:CourseID"`
	// Display order is caller-supplied; duplicates and gaps are allowed.
	Order int `json:"order" gorm:"column:sequence_order;not null;default:0"`
}
