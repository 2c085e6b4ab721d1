package models

import "gorm.io/gorm"

type Discussion struct {
	gorm.Model
	CourseID uint   `json:"courseId" gorm:"index;not null"`
	UserID   uint   `json:"userId" gorm:"not null"`
	User     User   `json:"user" gorm:"foreignKey:UserID"`
	Question string `json:"question" gorm:"not null"`
	// Answers are append-only; never edited or removed.
	Answers []DiscussionAnswer `json:"answers" gorm:"foreignKey:DiscussionID"`
}

type DiscussionAnswer struct {
	gorm.Model
	DiscussionID uint   `json:"discussionId" gorm:"index;not null"`
	UserID       uint   `json:"userId" gorm:"not null"`
	User         User   `json:"user" gorm:"foreignKey:UserID"`
	Answer       string `json:"answer" gorm:"not null"`
}
