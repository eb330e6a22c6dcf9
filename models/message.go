package models

import (
	"time"
)

const (
	MessageTypeText  = "text"
	MessageTypeImage = "image"
)

type Message struct {
	ID              uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	MatchID         uint      `json:"match_id" gorm:"not null;index"`
	SenderProfileID uint      `json:"sender_profile_id" gorm:"not null"`
	Content         string    `json:"content" gorm:"type:text;not null"`
	Type            string    `json:"type" gorm:"not null;default:'text'"`
	IsRead          bool      `json:"is_read" gorm:"default:false"`
	CreatedAt       time.Time `json:"created_at"`
	Match           Match     `json:"-" gorm:"foreignKey:MatchID"`
	SenderProfile   Profile   `json:"-" gorm:"foreignKey:SenderProfileID"`
}

// ValidMessageType reports whether t is a supported message payload type.
func ValidMessageType(t string) bool {
	return t == MessageTypeText || t == MessageTypeImage
}
