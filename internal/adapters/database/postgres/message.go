package postgres

import (
	"context"

	"github.com/simplyrugby/club-server/internal/domain/entity"
	"gorm.io/gorm"
)

type MessageStorage struct {
	db *gorm.DB
}

func NewMessageStorage(db *gorm.DB) *MessageStorage {
	return &MessageStorage{
		db: db,
	}
}

// CreateBatch inserts the whole fan-out in one statement; the batch either
// commits in full or not at all.
func (s *MessageStorage) CreateBatch(ctx context.Context, messages []entity.Message) error {
	if len(messages) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Create(&messages).Error
}

func (s *MessageStorage) Get(ctx context.Context, id string) (*entity.Message, error) {
	var message entity.Message
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&message).Error
	return &message, err
}

// GetByReceiver returns the receiver's messages, newest first.
func (s *MessageStorage) GetByReceiver(ctx context.Context, receiverID string, unreadOnly bool, limit, offset int) ([]entity.Message, error) {
	query := s.db.WithContext(ctx).Where("receiver_id = ?", receiverID)
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}
	var messages []entity.Message
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&messages).Error
	return messages, err
}

func (s *MessageStorage) Update(ctx context.Context, message *entity.Message) (*entity.Message, error) {
	err := s.db.WithContext(ctx).Save(&message).Error
	return message, err
}

func (s *MessageStorage) CountUnread(ctx context.Context, receiverID string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&entity.Message{}).
		Where("receiver_id = ? AND is_read = ?", receiverID, false).
		Count(&count).Error
	return count, err
}
