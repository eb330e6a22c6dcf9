package models

import (
	"time"

	"gorm.io/gorm"
)

type Block struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at"`

	BlockerProfileID uint `gorm:"not null;index" json:"blocker_profile_id"`
	BlockedProfileID uint `gorm:"not null;index" json:"blocked_profile_id"`

	BlockerProfile Profile `gorm:"foreignKey:BlockerProfileID" json:"-"`
	BlockedProfile Profile `gorm:"foreignKey:BlockedProfileID" json:"-"`
}
