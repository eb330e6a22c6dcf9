package repositories

import (
	"context"

	"github.com/spice-app/api-go/models"
	"gorm.io/gorm"
)

type BlockRepository interface {
	Find(ctx context.Context, blockerID, blockedID uint) (models.Block, error)
	Create(ctx context.Context, block *models.Block) error
	Delete(ctx context.Context, block *models.Block) error
	BlockedIDs(ctx context.Context, blockerID uint) ([]uint, error)
	BlockerIDs(ctx context.Context, blockedID uint) ([]uint, error)
	IsBlockedEither(ctx context.Context, profileX, profileY uint) (bool, error)
}

type blockRepository struct {
	db *gorm.DB
}

func NewBlockRepository(db *gorm.DB) BlockRepository {
	return &blockRepository{db: db}
}

func (r *blockRepository) Find(ctx context.Context, blockerID, blockedID uint) (models.Block, error) {
	var block models.Block
	err := r.db.WithContext(ctx).
		Where("blocker_profile_id = ? AND blocked_profile_id = ?", blockerID, blockedID).
		First(&block).Error
	return block, err
}

func (r *blockRepository) Create(ctx context.Context, block *models.Block) error {
	return r.db.WithContext(ctx).Create(block).Error
}

func (r *blockRepository) Delete(ctx context.Context, block *models.Block) error {
	return r.db.WithContext(ctx).Delete(block).Error
}

func (r *blockRepository) BlockedIDs(ctx context.Context, blockerID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Model(&models.Block{}).
		Where("blocker_profile_id = ?", blockerID).
		Pluck("blocked_profile_id", &ids).Error
	return ids, err
}

func (r *blockRepository) BlockerIDs(ctx context.Context, blockedID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Model(&models.Block{}).
		Where("blocked_profile_id = ?", blockedID).
		Pluck("blocker_profile_id", &ids).Error
	return ids, err
}

func (r *blockRepository) IsBlockedEither(ctx context.Context, profileX, profileY uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Block{}).
		Where("(blocker_profile_id = ? AND blocked_profile_id = ?) OR (blocker_profile_id = ? AND blocked_profile_id = ?)",
			profileX, profileY, profileY, profileX).
		Count(&count).Error
	return count > 0, err
}
