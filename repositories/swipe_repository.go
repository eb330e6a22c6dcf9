package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/spice-app/api-go/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var likeActions = []string{models.SwipeActionLike, models.SwipeActionSuperlike}

type SwipeRepository interface {
	// RecordSwipe upserts the swipe and, for like/superlike actions, detects
	// a reciprocal like and creates the match. The whole sequence runs in one
	// transaction; the returned match is nil when no mutual like exists.
	RecordSwipe(ctx context.Context, swiperID, swipedID uint, action string) (models.Swipe, *models.Match, error)
	SwipedIDs(ctx context.Context, swiperID uint) ([]uint, error)
	PendingLikerIDs(ctx context.Context, profileID uint) ([]uint, error)
}

type swipeRepository struct {
	db *gorm.DB
}

func NewSwipeRepository(db *gorm.DB) SwipeRepository {
	return &swipeRepository{db: db}
}

func (r *swipeRepository) RecordSwipe(ctx context.Context, swiperID, swipedID uint, action string) (models.Swipe, *models.Match, error) {
	swipe := models.Swipe{
		SwiperID: swiperID,
		SwipedID: swipedID,
		Action:   action,
	}
	var match *models.Match

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Serialize reciprocal swipes on the same pair. At READ COMMITTED,
		// two concurrent reciprocal likes would each miss the other's
		// uncommitted row in the reverse lookup below and no match would be
		// created; the lock is released at commit.
		a, b := models.NormalizePair(swiperID, swipedID)
		if err := tx.Exec("SELECT pg_advisory_xact_lock(?, ?)", a, b).Error; err != nil {
			return err
		}

		// Re-swiping the same target updates the action instead of piling up
		// rows; the pair is unique.
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "swiper_profile_id"}, {Name: "swiped_profile_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"action":     action,
				"updated_at": time.Now(),
			}),
		}).Create(&swipe).Error; err != nil {
			return err
		}

		if !models.IsLike(action) {
			return nil
		}

		var reverse models.Swipe
		err := tx.Where("swiper_profile_id = ? AND swiped_profile_id = ? AND action IN ?",
			swipedID, swiperID, likeActions).First(&reverse).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		// The pair lock above plus the unique index make match creation
		// exactly-once even when both reciprocal swipes land concurrently.
		m := models.Match{ProfileAID: a, ProfileBID: b}
		if err := tx.Where("profile_a_id = ? AND profile_b_id = ?", a, b).FirstOrCreate(&m).Error; err != nil {
			return err
		}
		match = &m
		return nil
	})

	if err != nil {
		return models.Swipe{}, nil, err
	}
	return swipe, match, nil
}

func (r *swipeRepository) SwipedIDs(ctx context.Context, swiperID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Model(&models.Swipe{}).
		Where("swiper_profile_id = ?", swiperID).
		Pluck("swiped_profile_id", &ids).Error
	return ids, err
}

// PendingLikerIDs returns profiles that liked profileID and have not been
// swiped back, newest first.
func (r *swipeRepository) PendingLikerIDs(ctx context.Context, profileID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Model(&models.Swipe{}).
		Where("swiped_profile_id = ? AND action IN ?", profileID, likeActions).
		Where("swiper_profile_id NOT IN (SELECT swiped_profile_id FROM swipes WHERE swiper_profile_id = ?)", profileID).
		Order("created_at DESC").
		Pluck("swiper_profile_id", &ids).Error
	return ids, err
}
