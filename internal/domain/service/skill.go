package service

import (
	"context"
	"errors"

	"github.com/simplyrugby/club-server/internal/domain/common/errorz"
	"github.com/simplyrugby/club-server/internal/domain/entity"
	"github.com/simplyrugby/club-server/pkg/logger/types"
	"gorm.io/gorm"
)

type skillAssessmentStorage interface {
	Create(ctx context.Context, assessment *entity.SkillAssessment) (*entity.SkillAssessment, error)
	GetByPlayerID(ctx context.Context, playerID string) ([]entity.SkillAssessment, error)
}

type skillPlayerStorage interface {
	Get(ctx context.Context, id string) (*entity.Player, error)
}

type SkillService struct {
	assessmentStorage skillAssessmentStorage
	playerStorage     skillPlayerStorage
	authorizer        *SquadAuthorizer
	logger            *types.Logger
}

func NewSkillService(
	assessmentStorage skillAssessmentStorage,
	playerStorage skillPlayerStorage,
	authorizer *SquadAuthorizer,
	logger *types.Logger,
) *SkillService {
	return &SkillService{
		assessmentStorage: assessmentStorage,
		playerStorage:     playerStorage,
		authorizer:        authorizer,
		logger:            logger,
	}
}

// RecordAssessment appends a new assessment row; history is never rewritten,
// the latest row per (player, skill) wins in reports. The acting coach must
// manage the player's squad.
func (s *SkillService) RecordAssessment(
	ctx context.Context,
	coachID, playerID, skillType string,
	skillLevel int,
	notes string,
) (*entity.SkillAssessment, error) {
	if !coreSkill(skillType) {
		return nil, errorz.Validationf("unknown skill %q", skillType)
	}
	if skillLevel < 1 || skillLevel > 5 {
		return nil, errorz.Validationf("skill level %d is outside 1..5", skillLevel)
	}

	player, err := s.playerStorage.Get(ctx, playerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorz.NotFoundf("player %s", playerID)
		}
		return nil, err
	}
	if player.SquadID == nil {
		return nil, errorz.Validationf("player %s is not assigned to a squad", playerID)
	}
	if err = s.authorizer.Authorize(ctx, coachID, *player.SquadID); err != nil {
		return nil, err
	}

	assessment, err := s.assessmentStorage.Create(ctx, &entity.SkillAssessment{
		PlayerID:   playerID,
		CoachID:    coachID,
		SkillType:  skillType,
		SkillLevel: skillLevel,
		Notes:      notes,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infof("coach %s assessed player %s: %s=%d", coachID, playerID, skillType, skillLevel)
	return assessment, nil
}

// PlayerAssessments returns the full assessment history for a player.
func (s *SkillService) PlayerAssessments(ctx context.Context, playerID string) ([]entity.SkillAssessment, error) {
	if _, err := s.playerStorage.Get(ctx, playerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorz.NotFoundf("player %s", playerID)
		}
		return nil, err
	}
	return s.assessmentStorage.GetByPlayerID(ctx, playerID)
}

func coreSkill(skillType string) bool {
	for _, skill := range entity.CoreSkills {
		if skill == skillType {
			return true
		}
	}
	return false
}
