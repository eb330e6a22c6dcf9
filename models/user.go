package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID            uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"deleted_at"`
	Email         string         `gorm:"unique;not null" json:"email"`
	Password      *string        `json:"-"` // nil for Google-only accounts
	GoogleID      *string        `gorm:"unique" json:"-"`
	Provider      string         `gorm:"not null;default:'email'" json:"provider"`
	EmailVerified bool           `json:"email_verified"`
	Profile       *Profile       `json:"profile,omitempty" gorm:"foreignKey:UserID"`
	RefreshTokens []RefreshToken `json:"-" gorm:"foreignKey:UserID"`
}
