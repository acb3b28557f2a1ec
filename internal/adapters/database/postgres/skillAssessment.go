package postgres

import (
	"context"

	"github.com/simplyrugby/club-server/internal/domain/entity"
	"gorm.io/gorm"
)

type SkillAssessmentStorage struct {
	db *gorm.DB
}

func NewSkillAssessmentStorage(db *gorm.DB) *SkillAssessmentStorage {
	return &SkillAssessmentStorage{
		db: db,
	}
}

func (s *SkillAssessmentStorage) Create(ctx context.Context, assessment *entity.SkillAssessment) (*entity.SkillAssessment, error) {
	err := s.db.WithContext(ctx).Create(&assessment).Error
	return assessment, err
}

func (s *SkillAssessmentStorage) GetByPlayerID(ctx context.Context, playerID string) ([]entity.SkillAssessment, error) {
	var assessments []entity.SkillAssessment
	err := s.db.WithContext(ctx).
		Where("player_id = ?", playerID).
		Order("created_at DESC").
		Find(&assessments).Error
	return assessments, err
}
