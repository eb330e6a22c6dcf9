package models

import (
	"time"
)

const (
	SwipeActionLike      = "like"
	SwipeActionPass      = "pass"
	SwipeActionSuperlike = "superlike"
)

// Swipe is a one-way decision from one profile toward another. The unique
// pair index makes re-swiping an upsert: the latest action wins.
type Swipe struct {
	ID             uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	SwiperID       uint      `json:"swiper_id" gorm:"column:swiper_profile_id;not null;uniqueIndex:idx_swipes_pair,priority:1"`
	SwipedID       uint      `json:"swiped_id" gorm:"column:swiped_profile_id;not null;uniqueIndex:idx_swipes_pair,priority:2;index"`
	Action         string    `json:"action" gorm:"not null"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	SwiperProfile  Profile   `json:"-" gorm:"foreignKey:SwiperID"`
	SwipedProfile  Profile   `json:"-" gorm:"foreignKey:SwipedID"`
}

// ValidSwipeAction reports whether action is one of like, pass or superlike.
func ValidSwipeAction(action string) bool {
	switch action {
	case SwipeActionLike, SwipeActionPass, SwipeActionSuperlike:
		return true
	}
	return false
}

// IsLike reports whether action expresses interest (like or superlike).
func IsLike(action string) bool {
	return action == SwipeActionLike || action == SwipeActionSuperlike
}
