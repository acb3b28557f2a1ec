package postgres

import (
	"context"
	"time"

	"github.com/simplyrugby/club-server/internal/domain/entity"
	"gorm.io/gorm"
)

type TrainingSessionStorage struct {
	db *gorm.DB
}

func NewTrainingSessionStorage(db *gorm.DB) *TrainingSessionStorage {
	return &TrainingSessionStorage{
		db: db,
	}
}

func (s *TrainingSessionStorage) Get(ctx context.Context, id string) (*entity.TrainingSession, error) {
	var session entity.TrainingSession
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&session).Error
	return &session, err
}

func (s *TrainingSessionStorage) GetByPlanID(ctx context.Context, planID string) ([]entity.TrainingSession, error) {
	var sessions []entity.TrainingSession
	err := s.db.WithContext(ctx).Where("plan_id = ?", planID).Order("date").Find(&sessions).Error
	return sessions, err
}

// GetCompletedByCoach returns the coach's completed sessions before the given
// date, most recent first.
func (s *TrainingSessionStorage) GetCompletedByCoach(ctx context.Context, coachID string, before time.Time) ([]entity.TrainingSession, error) {
	var sessions []entity.TrainingSession
	err := s.db.WithContext(ctx).
		Joins("JOIN training_plans ON training_plans.id = training_sessions.plan_id").
		Where("training_plans.coach_id = ? AND training_sessions.status = ? AND training_sessions.date < ?",
			coachID, entity.SessionCompleted, before).
		Order("training_sessions.date DESC").
		Find(&sessions).Error
	return sessions, err
}

// GetUpcomingByCoach returns the coach's sessions on or after the given date,
// soonest first.
func (s *TrainingSessionStorage) GetUpcomingByCoach(ctx context.Context, coachID string, from time.Time) ([]entity.TrainingSession, error) {
	var sessions []entity.TrainingSession
	err := s.db.WithContext(ctx).
		Joins("JOIN training_plans ON training_plans.id = training_sessions.plan_id").
		Where("training_plans.coach_id = ? AND training_sessions.date >= ?", coachID, from).
		Order("training_sessions.date, training_sessions.start_time").
		Find(&sessions).Error
	return sessions, err
}

func (s *TrainingSessionStorage) GetBetween(ctx context.Context, from, to time.Time) ([]entity.TrainingSession, error) {
	var sessions []entity.TrainingSession
	err := s.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", from, to).
		Order("date, start_time").
		Find(&sessions).Error
	return sessions, err
}

// UpdateStatus is a single field update on the session row.
func (s *TrainingSessionStorage) UpdateStatus(ctx context.Context, id string, status entity.SessionStatus) error {
	return s.db.WithContext(ctx).
		Model(&entity.TrainingSession{}).
		Where("id = ?", id).
		Update("status", status).Error
}
