package models

import "time"

// Group is a chat group owned by the user referenced by AdminID.
// AdminID is not verified against the users table at creation time, and
// deleting a group removes only the group row: memberships and messages
// referencing it are left in place.
type Group struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	AdminID   uint      `gorm:"not null" json:"admin_id"`
	Admin     *User     `gorm:"foreignKey:AdminID" json:"admin,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
