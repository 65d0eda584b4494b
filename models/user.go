package models

import "time"

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"isAdmin" gorm:"column:is_admin;default:false"`
	CreatedAt time.Time `json:"createdAt"`
}
