package models

import "time"

// GroupMember maps a user into a group, one row per (group, user) pair.
// The composite unique index closes the race where two concurrent adds
// both pass the service-level duplicate pre-check.
type GroupMember struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	GroupID   uint      `gorm:"not null;uniqueIndex:idx_group_user" json:"group_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_group_user" json:"user_id"`
	Group     *Group    `gorm:"foreignKey:GroupID" json:"group,omitempty"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
