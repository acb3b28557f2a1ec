package postgres

import (
	"context"

	"github.com/simplyrugby/club-server/internal/domain/entity"
	"gorm.io/gorm"
)

type PlayerStorage struct {
	db *gorm.DB
}

func NewPlayerStorage(db *gorm.DB) *PlayerStorage {
	return &PlayerStorage{
		db: db,
	}
}

func (s *PlayerStorage) Create(ctx context.Context, player *entity.Player) (*entity.Player, error) {
	err := s.db.WithContext(ctx).Create(&player).Error
	return player, err
}

func (s *PlayerStorage) Get(ctx context.Context, id string) (*entity.Player, error) {
	var player entity.Player
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&player).Error
	return &player, err
}

func (s *PlayerStorage) GetByUserID(ctx context.Context, userID string) (*entity.Player, error) {
	var player entity.Player
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&player).Error
	return &player, err
}

func (s *PlayerStorage) GetBySquadID(ctx context.Context, squadID string) ([]entity.Player, error) {
	var players []entity.Player
	err := s.db.WithContext(ctx).Where("squad_id = ?", squadID).Find(&players).Error
	return players, err
}

// GetUnassigned is a function that gets players without a squad.
func (s *PlayerStorage) GetUnassigned(ctx context.Context) ([]entity.Player, error) {
	var players []entity.Player
	err := s.db.WithContext(ctx).Where("squad_id IS NULL").Find(&players).Error
	return players, err
}

// UpdateSquad sets the player's squad reference in a single atomic update.
// A nil squadID clears the membership.
func (s *PlayerStorage) UpdateSquad(ctx context.Context, playerID string, squadID *string) error {
	return s.db.WithContext(ctx).
		Model(&entity.Player{}).
		Where("id = ?", playerID).
		Update("squad_id", squadID).Error
}

func (s *PlayerStorage) Update(ctx context.Context, player *entity.Player) (*entity.Player, error) {
	err := s.db.WithContext(ctx).Save(&player).Error
	return player, err
}
