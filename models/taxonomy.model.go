package models

import "gorm.io/gorm"

// SubjectArea groups subjects of the topic taxonomy.
type SubjectArea struct {
	gorm.Model
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description" gorm:"type:text"`
	Subjects    []Subject `json:"subjects,omitempty" gorm:"foreignKey:AreaID"`
}

// Subject tags courses, documentation and forum posts.
type Subject struct {
	gorm.Model
	Name        string       `json:"name" gorm:"not null"`
	Description string       `json:"description" gorm:"type:text"`
	AreaID      *uint        `json:"area_id" gorm:"index"`
	Area        *SubjectArea `json:"area,omitempty"`
}

// Level is an educational level tag (Nivel).
type Level struct {
	gorm.Model
	Name  string `json:"name" gorm:"not null"`
	Order int    `json:"order" gorm:"column:sort_order;default:0"`
}
