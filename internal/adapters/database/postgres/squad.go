package postgres

import (
	"context"

	"github.com/simplyrugby/club-server/internal/domain/entity"
	"gorm.io/gorm"
)

type SquadStorage struct {
	db *gorm.DB
}

func NewSquadStorage(db *gorm.DB) *SquadStorage {
	return &SquadStorage{
		db: db,
	}
}

func (s *SquadStorage) Create(ctx context.Context, squad *entity.Squad) (*entity.Squad, error) {
	err := s.db.WithContext(ctx).Create(&squad).Error
	return squad, err
}

func (s *SquadStorage) Get(ctx context.Context, id string) (*entity.Squad, error) {
	var squad entity.Squad
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&squad).Error
	return &squad, err
}

func (s *SquadStorage) GetAll(ctx context.Context) ([]entity.Squad, error) {
	var squads []entity.Squad
	err := s.db.WithContext(ctx).Order("name").Find(&squads).Error
	return squads, err
}

