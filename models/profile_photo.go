package models

import (
	"time"
)

type ProfilePhoto struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	ProfileID uint      `json:"profile_id" gorm:"not null;index"`
	URL       string    `json:"url" gorm:"not null"`
	Key       string    `json:"-" gorm:"not null"` // storage object key
	Position  int       `json:"position" gorm:"not null;default:0"`
	IsPrimary bool      `json:"is_primary" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`
}
