package models

import (
	"time"
)

// Match links two mutually interested profiles. The pair is stored normalized
// (ProfileAID < ProfileBID) so the unique index guarantees at most one match
// per unordered pair.
type Match struct {
	ID            uint       `json:"id" gorm:"primaryKey;autoIncrement"`
	ProfileAID    uint       `json:"profile_a_id" gorm:"not null;uniqueIndex:idx_matches_pair,priority:1"`
	ProfileBID    uint       `json:"profile_b_id" gorm:"not null;uniqueIndex:idx_matches_pair,priority:2;index"`
	MatchedAt     time.Time  `json:"matched_at" gorm:"autoCreateTime"`
	LastMessageAt *time.Time `json:"last_message_at"`
	ProfileA      Profile    `json:"-" gorm:"foreignKey:ProfileAID"`
	ProfileB      Profile    `json:"-" gorm:"foreignKey:ProfileBID"`
}

// NormalizePair orders two profile ids for match storage.
func NormalizePair(x, y uint) (uint, uint) {
	if x < y {
		return x, y
	}
	return y, x
}

// Involves reports whether the profile is one of the match's participants.
func (m *Match) Involves(profileID uint) bool {
	return m.ProfileAID == profileID || m.ProfileBID == profileID
}

// Counterpart returns the other participant's profile id.
func (m *Match) Counterpart(profileID uint) uint {
	if m.ProfileAID == profileID {
		return m.ProfileBID
	}
	return m.ProfileAID
}
