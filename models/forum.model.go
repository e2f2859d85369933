package models

import "gorm.io/gorm"

type ForumPost struct {
	gorm.Model
	Title     string    `json:"title" gorm:"not null"`
	Content   string    `json:"content" gorm:"type:text"`
	AuthorID  uint      `json:"author_id" gorm:"index;not null"`
	Author    *User     `json:"author,omitempty"`
	SubjectID *uint     `json:"subject_id" gorm:"index"`
	Subject   *Subject  `json:"subject,omitempty"`
	Pinned    bool      `json:"pinned" gorm:"default:false"`
	Comments  []Comment `json:"comments,omitempty" gorm:"foreignKey:PostID"`
}

type Comment struct {
	gorm.Model
	PostID   uint   `json:"post_id" gorm:"index;not null"`
	AuthorID uint   `json:"author_id" gorm:"index;not null"`
	Author   *User  `json:"author,omitempty"`
	Content  string `json:"content" gorm:"type:text"`
}
