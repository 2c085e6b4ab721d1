package models

import (
	"time"

	"gorm.io/gorm"
)

type Progress struct {
	gorm.Model
	StudentID   uint       `json:"studentId" gorm:"uniqueIndex:idx_progress_student_course_lesson;not null"`
	CourseID    uint       `json:"courseId" gorm:"uniqueIndex:idx_progress_student_course_lesson;not null"`
	LessonID    uint       `json:"lessonId" gorm:"uniqueIndex:idx_progress_student_course_lesson;not null"`
	Completed   bool       `json:"completed" gorm:"default:false"`
	CompletedAt *time.Time `json:"completedAt"`
	Lesson      Lesson     `json:"lesson" gorm:"foreignKey:LessonID"`
}
