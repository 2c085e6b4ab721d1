package models

import "gorm.io/gorm"

type Grade struct {
	gorm.Model
	StudentID  uint    `json:"studentId" gorm:"uniqueIndex:idx_grade_student_course;not null"`
	CourseID   uint    `json:"courseId" gorm:"uniqueIndex:idx_grade_student_course;not null"`
	Grade      float64 `json:"grade" gorm:"not null"`
	Feedback   string  `json:"feedback"`
	GradedByID uint    `json:"gradedById" gorm:"not null"`
	Student    User    `json:"student" gorm:"foreignKey:StudentID"`
	Course     Course  `json:"course" gorm:"foreignKey:CourseID"`
	GradedBy   User    `json:"gradedBy" gorm:"foreignKey:GradedByID"`
}
