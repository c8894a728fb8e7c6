// Package models contains the persisted domain entities and the error
// taxonomy shared by the repository, service, and server layers.
package models

import "time"

// User is an account in the chat backend. Usernames are deliberately not
// unique and passwords are stored as-is: credential handling is a plain
// equality check with no hashing or session state.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:50;not null" json:"username"`
	Password  string    `gorm:"size:50;not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
