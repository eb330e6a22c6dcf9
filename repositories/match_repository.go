package repositories

import (
	"context"
	"errors"

	"github.com/spice-app/api-go/models"
	"gorm.io/gorm"
)

// MatchWithProfile pairs a match with the counterpart profile as seen from
// one participant's side.
type MatchWithProfile struct {
	Match   models.Match   `json:"match"`
	Profile models.Profile `json:"profile"`
}

type MatchRepository interface {
	GetByID(ctx context.Context, id uint) (models.Match, error)
	ListForProfile(ctx context.Context, profileID uint) ([]MatchWithProfile, error)
	// Delete removes the match and all of its messages.
	Delete(ctx context.Context, matchID uint) error
	DeleteForPair(ctx context.Context, profileX, profileY uint) error
}

type matchRepository struct {
	db *gorm.DB
}

func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &matchRepository{db: db}
}

func (r *matchRepository) GetByID(ctx context.Context, id uint) (models.Match, error) {
	var match models.Match
	err := r.db.WithContext(ctx).First(&match, id).Error
	return match, err
}

func (r *matchRepository) ListForProfile(ctx context.Context, profileID uint) ([]MatchWithProfile, error) {
	var matches []models.Match
	err := r.db.WithContext(ctx).
		Where("profile_a_id = ? OR profile_b_id = ?", profileID, profileID).
		Order("COALESCE(last_message_at, matched_at) DESC").
		Find(&matches).Error
	if err != nil {
		return nil, err
	}

	counterpartIDs := make([]uint, 0, len(matches))
	for _, m := range matches {
		counterpartIDs = append(counterpartIDs, m.Counterpart(profileID))
	}

	var profiles []models.Profile
	if len(counterpartIDs) > 0 {
		if err := r.db.WithContext(ctx).Preload("Photos").Where("id IN ?", counterpartIDs).Find(&profiles).Error; err != nil {
			return nil, err
		}
	}
	byID := make(map[uint]models.Profile, len(profiles))
	for _, p := range profiles {
		byID[p.ID] = p
	}

	result := make([]MatchWithProfile, 0, len(matches))
	for _, m := range matches {
		result = append(result, MatchWithProfile{Match: m, Profile: byID[m.Counterpart(profileID)]})
	}
	return result, nil
}

func (r *matchRepository) Delete(ctx context.Context, matchID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("match_id = ?", matchID).Delete(&models.Message{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Match{}, matchID).Error
	})
}

func (r *matchRepository) DeleteForPair(ctx context.Context, profileX, profileY uint) error {
	a, b := models.NormalizePair(profileX, profileY)
	var match models.Match
	err := r.db.WithContext(ctx).Where("profile_a_id = ? AND profile_b_id = ?", a, b).First(&match).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return r.Delete(ctx, match.ID)
}
