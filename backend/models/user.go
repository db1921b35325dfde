package models

import "gorm.io/gorm"

// User is an operator account for the admin log API.
type User struct {
	gorm.Model
	Email    string `json:"email" gorm:"uniqueIndex"`
	Password string `json:"-"` // bcrypt hash, never serialize
}
