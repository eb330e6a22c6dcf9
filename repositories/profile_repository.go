package repositories

import (
	"context"

	"github.com/spice-app/api-go/models"
	"gorm.io/gorm"
)

// CandidateFilters are the attribute filters applied inside the candidate
// query. Distance filtering happens after the query, in the discovery
// service, because coordinates are optional on both sides.
type CandidateFilters struct {
	MinAge         int
	MaxAge         int
	Genders        []string
	AccountTypes   []string
	OnlyVerified   bool
	OnlyWithPhotos bool
}

type ProfileRepository interface {
	Create(ctx context.Context, profile *models.Profile) error
	GetByID(ctx context.Context, id uint) (models.Profile, error)
	GetByUserID(ctx context.Context, userID uint) (models.Profile, error)
	Update(ctx context.Context, profile *models.Profile) error
	ListByIDs(ctx context.Context, ids []uint) ([]models.Profile, error)
	FindCandidates(ctx context.Context, excludedIDs []uint, filters CandidateFilters, limit int) ([]models.Profile, error)
	// DeletePhoto removes the photo row; GORM's Save only upserts
	// associations, so dropping a photo needs an explicit delete.
	DeletePhoto(ctx context.Context, photo *models.ProfilePhoto) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, profile *models.Profile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *profileRepository) GetByID(ctx context.Context, id uint) (models.Profile, error) {
	var profile models.Profile
	err := r.db.WithContext(ctx).Preload("Photos").First(&profile, id).Error
	return profile, err
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID uint) (models.Profile, error) {
	var profile models.Profile
	err := r.db.WithContext(ctx).Preload("Photos").Where("user_id = ?", userID).First(&profile).Error
	return profile, err
}

func (r *profileRepository) Update(ctx context.Context, profile *models.Profile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *profileRepository) ListByIDs(ctx context.Context, ids []uint) ([]models.Profile, error) {
	if len(ids) == 0 {
		return []models.Profile{}, nil
	}
	var profiles []models.Profile
	err := r.db.WithContext(ctx).Preload("Photos").Where("id IN ?", ids).Find(&profiles).Error
	return profiles, err
}

func (r *profileRepository) FindCandidates(ctx context.Context, excludedIDs []uint, filters CandidateFilters, limit int) ([]models.Profile, error) {
	query := r.db.WithContext(ctx).Model(&models.Profile{}).
		Where("is_visible = ? AND is_complete = ?", true, true).
		Where("age BETWEEN ? AND ?", filters.MinAge, filters.MaxAge)

	if len(excludedIDs) > 0 {
		query = query.Where("id NOT IN ?", excludedIDs)
	}
	if len(filters.Genders) > 0 {
		query = query.Where("gender IN ?", filters.Genders)
	}
	if len(filters.AccountTypes) > 0 {
		query = query.Where("account_type IN ?", filters.AccountTypes)
	}
	if filters.OnlyVerified {
		query = query.Where("is_verified = ?", true)
	}
	if filters.OnlyWithPhotos {
		query = query.Where("EXISTS (SELECT 1 FROM profile_photos WHERE profile_photos.profile_id = profiles.id)")
	}

	var candidates []models.Profile
	err := query.Preload("Photos").Order("created_at DESC").Limit(limit).Find(&candidates).Error
	return candidates, err
}

func (r *profileRepository) DeletePhoto(ctx context.Context, photo *models.ProfilePhoto) error {
	return r.db.WithContext(ctx).Delete(photo).Error
}
