package models

import "gorm.io/gorm"

type Enrollment struct {
	gorm.Model
	StudentID uint   `json:"studentId" gorm:"uniqueIndex:idx_enrollment_student_course;not null"`
	CourseID  uint   `json:"courseId" gorm:"uniqueIndex:idx_enrollment_student_course;not null"`
	Student   User   `json:"-" gorm:"foreignKey:StudentID"`
	Course    Course `json:"course" gorm:"foreignKey:CourseID"`
}
