package postgres

import (
	"context"

	"github.com/simplyrugby/club-server/internal/domain/entity"
	"gorm.io/gorm"
)

type MemberAssistantStorage struct {
	db *gorm.DB
}

func NewMemberAssistantStorage(db *gorm.DB) *MemberAssistantStorage {
	return &MemberAssistantStorage{
		db: db,
	}
}

func (s *MemberAssistantStorage) Create(ctx context.Context, assistant *entity.MemberAssistant) (*entity.MemberAssistant, error) {
	err := s.db.WithContext(ctx).Create(&assistant).Error
	return assistant, err
}

func (s *MemberAssistantStorage) Get(ctx context.Context, id string) (*entity.MemberAssistant, error) {
	var assistant entity.MemberAssistant
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&assistant).Error
	return &assistant, err
}

func (s *MemberAssistantStorage) GetByUserID(ctx context.Context, userID string) (*entity.MemberAssistant, error) {
	var assistant entity.MemberAssistant
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&assistant).Error
	return &assistant, err
}
