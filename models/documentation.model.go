package models

import "gorm.io/gorm"

const (
	FileTypeImage = "image"
	FileTypePDF   = "pdf"
	FileTypeVideo = "video"
)

// Documentation is an uploaded file moderated through IsPublished and GuestViewable.
type Documentation struct {
	gorm.Model
	Title         string   `json:"title" gorm:"not null"`
	Description   string   `json:"description" gorm:"type:text"`
	FileID        uint     `json:"file_id" gorm:"index;not null"`
	File          *File    `json:"file,omitempty"`
	FileType      string   `json:"file_type" gorm:"index"`
	SubjectID     *uint    `json:"subject_id" gorm:"index"`
	Subject       *Subject `json:"subject,omitempty"`
	LevelID       *uint    `json:"level_id" gorm:"index"`
	Level         *Level   `json:"level,omitempty"`
	UploaderID    uint     `json:"uploader_id" gorm:"index;not null"`
	Uploader      *User    `json:"uploader,omitempty"`
	IsPublished   bool     `json:"is_published" gorm:"default:false"`
	GuestViewable bool     `json:"guest_viewable" gorm:"default:false"`
}
