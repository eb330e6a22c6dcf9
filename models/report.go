package models

import (
	"time"

	"gorm.io/gorm"
)

type Report struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at"`

	ReporterProfileID uint   `gorm:"not null" json:"reporter_profile_id"`
	ReportedProfileID uint   `gorm:"not null" json:"reported_profile_id"`
	Reason            string `gorm:"not null" json:"reason"`
	Description       string `json:"description"`
	Status            string `gorm:"not null;default:'pending'" json:"status"` // pending, reviewed, resolved, dismissed

	ReporterProfile Profile `gorm:"foreignKey:ReporterProfileID" json:"-"`
	ReportedProfile Profile `gorm:"foreignKey:ReportedProfileID" json:"-"`
}
