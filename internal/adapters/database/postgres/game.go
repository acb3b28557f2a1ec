package postgres

import (
	"context"
	"time"

	"github.com/simplyrugby/club-server/internal/domain/entity"
	"gorm.io/gorm"
)

type GameStorage struct {
	db *gorm.DB
}

func NewGameStorage(db *gorm.DB) *GameStorage {
	return &GameStorage{
		db: db,
	}
}

func (s *GameStorage) Create(ctx context.Context, game *entity.Game) (*entity.Game, error) {
	err := s.db.WithContext(ctx).Create(&game).Error
	return game, err
}

func (s *GameStorage) Get(ctx context.Context, id string) (*entity.Game, error) {
	var game entity.Game
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&game).Error
	return &game, err
}

// GetUpcoming returns games on or after the given date, soonest first.
// A non-nil squadID narrows the result to one squad.
func (s *GameStorage) GetUpcoming(ctx context.Context, from time.Time, squadID *string, limit int) ([]entity.Game, error) {
	query := s.db.WithContext(ctx).Where("match_date >= ?", from)
	if squadID != nil {
		query = query.Where("squad_id = ?", *squadID)
	}
	var games []entity.Game
	err := query.Order("match_date ASC").Limit(limit).Find(&games).Error
	return games, err
}

// GetPast returns games before the given date, most recent first.
func (s *GameStorage) GetPast(ctx context.Context, until time.Time, squadID *string, limit int) ([]entity.Game, error) {
	query := s.db.WithContext(ctx).Where("match_date < ?", until)
	if squadID != nil {
		query = query.Where("squad_id = ?", *squadID)
	}
	var games []entity.Game
	err := query.Order("match_date DESC").Limit(limit).Find(&games).Error
	return games, err
}

// GetBetween returns games with match dates in [from, to].
func (s *GameStorage) GetBetween(ctx context.Context, from, to time.Time) ([]entity.Game, error) {
	var games []entity.Game
	err := s.db.WithContext(ctx).
		Where("match_date >= ? AND match_date <= ?", from, to).
		Order("match_date").
		Find(&games).Error
	return games, err
}

func (s *GameStorage) Update(ctx context.Context, game *entity.Game) (*entity.Game, error) {
	err := s.db.WithContext(ctx).Save(&game).Error
	return game, err
}
