package postgres

import (
	"context"

	"github.com/simplyrugby/club-server/internal/domain/entity"
	"gorm.io/gorm"
)

type VenueStorage struct {
	db *gorm.DB
}

func NewVenueStorage(db *gorm.DB) *VenueStorage {
	return &VenueStorage{
		db: db,
	}
}

func (s *VenueStorage) Create(ctx context.Context, venue *entity.Venue) (*entity.Venue, error) {
	err := s.db.WithContext(ctx).Create(&venue).Error
	return venue, err
}

func (s *VenueStorage) GetAll(ctx context.Context) ([]entity.Venue, error) {
	var venues []entity.Venue
	err := s.db.WithContext(ctx).Order("name").Find(&venues).Error
	return venues, err
}
