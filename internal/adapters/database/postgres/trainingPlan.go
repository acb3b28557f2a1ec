package postgres

import (
	"context"

	"github.com/simplyrugby/club-server/internal/domain/entity"
	"gorm.io/gorm"
)

type TrainingPlanStorage struct {
	db *gorm.DB
}

func NewTrainingPlanStorage(db *gorm.DB) *TrainingPlanStorage {
	return &TrainingPlanStorage{
		db: db,
	}
}

// CreateWithSessions persists a plan together with its generated sessions in
// one transaction. Either the plan and every session are written, or nothing is.
func (s *TrainingPlanStorage) CreateWithSessions(ctx context.Context, plan *entity.TrainingPlan, sessions []entity.TrainingSession) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(plan).Error; err != nil {
			return err
		}
		for i := range sessions {
			sessions[i].PlanID = plan.ID
		}
		if len(sessions) == 0 {
			return nil
		}
		return tx.Create(&sessions).Error
	})
}

func (s *TrainingPlanStorage) Get(ctx context.Context, id string) (*entity.TrainingPlan, error) {
	var plan entity.TrainingPlan
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&plan).Error
	return &plan, err
}

func (s *TrainingPlanStorage) GetByCoachID(ctx context.Context, coachID string) ([]entity.TrainingPlan, error) {
	var plans []entity.TrainingPlan
	err := s.db.WithContext(ctx).Where("coach_id = ?", coachID).Order("start_date DESC").Find(&plans).Error
	return plans, err
}

// ExistsForCoachAndSquad reports whether the coach has any training plan for the squad.
func (s *TrainingPlanStorage) ExistsForCoachAndSquad(ctx context.Context, coachID, squadID string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&entity.TrainingPlan{}).
		Where("coach_id = ? AND squad_id = ?", coachID, squadID).
		Count(&count).Error
	return count > 0, err
}

func (s *TrainingPlanStorage) Update(ctx context.Context, plan *entity.TrainingPlan) (*entity.TrainingPlan, error) {
	err := s.db.WithContext(ctx).Save(&plan).Error
	return plan, err
}
