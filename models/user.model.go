package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStudent = "student"
	RoleGuest   = "guest"
)

// Roles lists the roles a stored user may hold.
var Roles = []string{RoleAdmin, RoleTeacher, RoleStudent}

type User struct {
	gorm.Model
	Name      string     `json:"name" gorm:"not null"`
	LastName  string     `json:"last_name" gorm:"default:''"`
	Email     string     `json:"email" gorm:"index;not null"` // stored lower-case
	Password  string     `json:"-" gorm:"not null"`
	Role      string     `json:"role" gorm:"default:'student'"`
	Avatar    string     `json:"avatar" gorm:"default:''"`
	Bio       string     `json:"bio" gorm:"type:text"`
	LastLogin *time.Time `json:"last_login"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// CanTeach reports whether the user may own courses and conferences.
func (u *User) CanTeach() bool {
	return u != nil && (u.Role == RoleTeacher || u.Role == RoleAdmin)
}
