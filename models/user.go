package models

import "gorm.io/gorm"

type UserRole string

const (
	RoleAdmin     UserRole = "admin"
	RoleHR        UserRole = "hr"
	RoleApplicant UserRole = "applicant"
)

type User struct {
	gorm.Model
	Username string   `json:"username" gorm:"size:64;uniqueIndex;not null"`
	Password string   `json:"-" gorm:"size:128;not null"`
	Email    string   `json:"email" gorm:"size:128;uniqueIndex;not null"`
	FullName string   `json:"full_name" gorm:"size:128"`
	Role     UserRole `json:"role" gorm:"type:varchar(16);default:'applicant'"`
}

func (u *User) IsStaff() bool {
	return u.Role == RoleAdmin || u.Role == RoleHR
}
