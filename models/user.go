// Package models contains data structures for the application's domain models.
package models

import "time"

// User is the identity principal behind every authenticated request.
type User struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Username   string    `gorm:"unique;not null" json:"username"`
	Email      string    `gorm:"unique;not null" json:"email"`
	Password   string    `gorm:"not null" json:"-"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	IsActive   bool      `gorm:"default:true" json:"is_active"`
	DateJoined time.Time `gorm:"autoCreateTime" json:"date_joined"`
}
