package models

import "time"

// Message is a post in a group. Empty content is permitted. Likes hang off
// the message and are the only declared cascade in the schema: deleting a
// message deletes its likes, while group deletion orphans its messages.
type Message struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	GroupID   uint      `gorm:"not null" json:"group_id"`
	UserID    uint      `gorm:"not null" json:"user_id"`
	Content   string    `gorm:"type:text" json:"content"`
	Group     *Group    `gorm:"foreignKey:GroupID" json:"group,omitempty"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Likes     []Like    `gorm:"foreignKey:MessageID;constraint:OnDelete:CASCADE" json:"likes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
