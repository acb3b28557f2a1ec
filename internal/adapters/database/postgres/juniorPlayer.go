package postgres

import (
	"context"

	"github.com/simplyrugby/club-server/internal/domain/entity"
	"gorm.io/gorm"
)

type JuniorPlayerStorage struct {
	db *gorm.DB
}

func NewJuniorPlayerStorage(db *gorm.DB) *JuniorPlayerStorage {
	return &JuniorPlayerStorage{
		db: db,
	}
}

func (s *JuniorPlayerStorage) Create(ctx context.Context, junior *entity.JuniorPlayer) (*entity.JuniorPlayer, error) {
	err := s.db.WithContext(ctx).Create(&junior).Error
	return junior, err
}

func (s *JuniorPlayerStorage) Get(ctx context.Context, id string) (*entity.JuniorPlayer, error) {
	var junior entity.JuniorPlayer
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&junior).Error
	return &junior, err
}

func (s *JuniorPlayerStorage) GetByUserID(ctx context.Context, userID string) (*entity.JuniorPlayer, error) {
	var junior entity.JuniorPlayer
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&junior).Error
	return &junior, err
}

func (s *JuniorPlayerStorage) GetBySquadID(ctx context.Context, squadID string) ([]entity.JuniorPlayer, error) {
	var juniors []entity.JuniorPlayer
	err := s.db.WithContext(ctx).Where("squad_id = ?", squadID).Find(&juniors).Error
	return juniors, err
}

func (s *JuniorPlayerStorage) Update(ctx context.Context, junior *entity.JuniorPlayer) (*entity.JuniorPlayer, error) {
	err := s.db.WithContext(ctx).Save(&junior).Error
	return junior, err
}
