package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	AccountTypeSingle = "single"
	AccountTypeCouple = "couple"

	TierFree    = "free"
	TierPremium = "premium"
	TierElite   = "elite"
)

// Profile is the public dating identity of a user. Location coordinates are
// optional; profiles without them are never distance-filtered.
type Profile struct {
	ID          uint           `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	UserID      uint           `json:"user_id" gorm:"uniqueIndex;not null"`
	DisplayName string         `json:"display_name" gorm:"not null"`
	Age         int            `json:"age" gorm:"not null"`
	Bio         string         `json:"bio" gorm:"type:text"`
	City        string         `json:"city"`
	State       string         `json:"state"`
	Latitude    *float64       `json:"latitude" gorm:"type:decimal(10,8)"`
	Longitude   *float64       `json:"longitude" gorm:"type:decimal(11,8)"`
	Gender      string         `json:"gender" gorm:"not null"`
	AccountType string         `json:"account_type" gorm:"not null;default:'single'"`
	Interests   pq.StringArray `json:"interests" gorm:"type:text[]"`

	SeekingGenders      pq.StringArray `json:"seeking_genders" gorm:"type:text[]"`
	SeekingAccountTypes pq.StringArray `json:"seeking_account_types" gorm:"type:text[]"`
	MinAgePref          int            `json:"min_age_pref" gorm:"not null;default:18"`
	MaxAgePref          int            `json:"max_age_pref" gorm:"not null;default:99"`
	MaxDistancePref     float64        `json:"max_distance_pref" gorm:"not null;default:100"` // km

	IsVerified     bool           `json:"is_verified" gorm:"default:false"`
	MembershipTier string         `json:"membership_tier" gorm:"not null;default:'free'"`
	IsVisible      bool           `json:"is_visible" gorm:"default:true"`
	IsComplete     bool           `json:"is_complete" gorm:"default:false"`
	Photos         []ProfilePhoto `json:"photos" gorm:"foreignKey:ProfileID"`

	// Populated by the discovery pipeline, never stored.
	Distance *float64 `json:"distance,omitempty" gorm:"-"`
}

// HasCoordinates reports whether the profile can take part in distance
// filtering.
func (p *Profile) HasCoordinates() bool {
	return p.Latitude != nil && p.Longitude != nil
}
