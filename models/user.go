package models

import "time"

type UserRole string

const (
	RoleSubmitter UserRole = "submitter"
	RoleReviewer  UserRole = "reviewer"
	RoleAdmin     UserRole = "admin"
)

func (r UserRole) IsValid() bool {
	return r == RoleSubmitter || r == RoleReviewer || r == RoleAdmin
}

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"size:64;not null;uniqueIndex"`
	Password  string    `json:"-" gorm:"size:128;not null"`
	Email     string    `json:"email" gorm:"size:128"`
	FullName  string    `json:"full_name" gorm:"size:128"`
	Role      UserRole  `json:"role" gorm:"type:user_role;not null;default:'submitter'"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
