package postgres

import (
	"context"

	"github.com/simplyrugby/club-server/internal/domain/entity"
	"gorm.io/gorm"
)

type AttendanceStorage struct {
	db *gorm.DB
}

func NewAttendanceStorage(db *gorm.DB) *AttendanceStorage {
	return &AttendanceStorage{
		db: db,
	}
}

func (s *AttendanceStorage) Create(ctx context.Context, attendance *entity.PlayerAttendance) (*entity.PlayerAttendance, error) {
	err := s.db.WithContext(ctx).Create(&attendance).Error
	return attendance, err
}

func (s *AttendanceStorage) GetByPlayerAndSession(ctx context.Context, playerID, sessionID string) (*entity.PlayerAttendance, error) {
	var attendance entity.PlayerAttendance
	err := s.db.WithContext(ctx).
		Where("player_id = ? AND session_id = ?", playerID, sessionID).
		First(&attendance).Error
	return &attendance, err
}

func (s *AttendanceStorage) GetBySessionID(ctx context.Context, sessionID string) ([]entity.PlayerAttendance, error) {
	var records []entity.PlayerAttendance
	err := s.db.WithContext(ctx).Where("session_id = ?", sessionID).Find(&records).Error
	return records, err
}

func (s *AttendanceStorage) GetByPlayerID(ctx context.Context, playerID string) ([]entity.PlayerAttendance, error) {
	var records []entity.PlayerAttendance
	err := s.db.WithContext(ctx).Where("player_id = ?", playerID).Find(&records).Error
	return records, err
}

func (s *AttendanceStorage) Update(ctx context.Context, attendance *entity.PlayerAttendance) (*entity.PlayerAttendance, error) {
	err := s.db.WithContext(ctx).Save(&attendance).Error
	return attendance, err
}
