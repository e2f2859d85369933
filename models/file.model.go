package models

import "gorm.io/gorm"

// File holds the metadata of a blob kept in the file store.
type File struct {
	gorm.Model
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	StorageKey  string `json:"-" gorm:"uniqueIndex;not null"`
	UploaderID  uint   `json:"uploader_id" gorm:"index"`
}
