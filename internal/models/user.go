// Package models contains data structures for the application's domain models.
package models

import "time"

// User is an API consumer owning favorites. Password is stored as given and never serialized.
type User struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Username  string     `gorm:"size:50;unique;not null" json:"username"`
	Email     string     `gorm:"size:120;unique;not null" json:"email"`
	Password  string     `gorm:"size:100;not null" json:"-"`
	CreatedAt *time.Time `json:"created_at"`
}

// TableName keeps the table name used by the existing schema.
func (User) TableName() string {
	return "user"
}
