package postgres

import (
	"context"
	"time"

	"github.com/simplyrugby/club-server/internal/domain/entity"
	"gorm.io/gorm"
)

type SeasonStorage struct {
	db *gorm.DB
}

func NewSeasonStorage(db *gorm.DB) *SeasonStorage {
	return &SeasonStorage{
		db: db,
	}
}

func (s *SeasonStorage) Create(ctx context.Context, season *entity.Season) (*entity.Season, error) {
	err := s.db.WithContext(ctx).Create(&season).Error
	return season, err
}

func (s *SeasonStorage) GetAll(ctx context.Context) ([]entity.Season, error) {
	var seasons []entity.Season
	err := s.db.WithContext(ctx).Order("start_date DESC").Find(&seasons).Error
	return seasons, err
}

// GetCovering returns the season whose date range includes the given date.
func (s *SeasonStorage) GetCovering(ctx context.Context, date time.Time) (*entity.Season, error) {
	var season entity.Season
	err := s.db.WithContext(ctx).
		Where("start_date <= ? AND end_date >= ?", date, date).
		First(&season).Error
	return &season, err
}

// GetLatest returns the season with the most recent end date.
func (s *SeasonStorage) GetLatest(ctx context.Context) (*entity.Season, error) {
	var season entity.Season
	err := s.db.WithContext(ctx).Order("end_date DESC").First(&season).Error
	return &season, err
}
