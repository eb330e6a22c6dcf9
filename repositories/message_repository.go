package repositories

import (
	"context"
	"time"

	"github.com/spice-app/api-go/models"
	"gorm.io/gorm"
)

type MessageRepository interface {
	// Create inserts the message and bumps the parent match's
	// last_message_at in the same transaction.
	Create(ctx context.Context, message *models.Message) error
	ListForMatch(ctx context.Context, matchID uint, limit, offset int) ([]models.Message, error)
	// MarkRead flags every unread message in the match not sent by readerID.
	MarkRead(ctx context.Context, matchID, readerID uint) error
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *models.Message) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(message).Error; err != nil {
			return err
		}
		return tx.Model(&models.Match{}).
			Where("id = ?", message.MatchID).
			Update("last_message_at", time.Now()).Error
	})
}

func (r *messageRepository) ListForMatch(ctx context.Context, matchID uint, limit, offset int) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.WithContext(ctx).
		Where("match_id = ?", matchID).
		Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&messages).Error
	return messages, err
}

func (r *messageRepository) MarkRead(ctx context.Context, matchID, readerID uint) error {
	return r.db.WithContext(ctx).Model(&models.Message{}).
		Where("match_id = ? AND sender_profile_id != ? AND is_read = ?", matchID, readerID, false).
		Update("is_read", true).Error
}
