package postgres

import (
	"context"

	"github.com/simplyrugby/club-server/internal/domain/entity"
	"gorm.io/gorm"
)

type CoachStorage struct {
	db *gorm.DB
}

func NewCoachStorage(db *gorm.DB) *CoachStorage {
	return &CoachStorage{
		db: db,
	}
}

func (s *CoachStorage) Create(ctx context.Context, coach *entity.Coach) (*entity.Coach, error) {
	err := s.db.WithContext(ctx).Create(&coach).Error
	return coach, err
}

func (s *CoachStorage) Get(ctx context.Context, id string) (*entity.Coach, error) {
	var coach entity.Coach
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&coach).Error
	return &coach, err
}

// GetByUserID is a function that gets a coach profile by the owning user id.
func (s *CoachStorage) GetByUserID(ctx context.Context, userID string) (*entity.Coach, error) {
	var coach entity.Coach
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&coach).Error
	return &coach, err
}

func (s *CoachStorage) GetAll(ctx context.Context) ([]entity.Coach, error) {
	var coaches []entity.Coach
	err := s.db.WithContext(ctx).Find(&coaches).Error
	return coaches, err
}

func (s *CoachStorage) GetBySquadID(ctx context.Context, squadID string) ([]entity.Coach, error) {
	var coaches []entity.Coach
	err := s.db.WithContext(ctx).Where("squad_id = ?", squadID).Find(&coaches).Error
	return coaches, err
}

func (s *CoachStorage) Update(ctx context.Context, coach *entity.Coach) (*entity.Coach, error) {
	err := s.db.WithContext(ctx).Save(&coach).Error
	return coach, err
}
