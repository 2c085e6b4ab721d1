package models

import "gorm.io/gorm"

type Course struct {
	gorm.Model
	Title        string `json:"title" gorm:"not null"`
	Description  string `json:"description"`
	InstructorID uint   `json:"instructorId" gorm:"index;not null"`
	Instructor   User   `json:"instructor" gorm:"foreignKey:InstructorID"`
	// Denormalized mirror of the enrollment rows, kept in sync inside the
	// enroll/unenroll transaction.
	StudentsEnrolled []User `json:"studentsEnrolled" gorm:"many2many:course_students"`
}
