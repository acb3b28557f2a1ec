package service

import (
	"context"
	"errors"

	"github.com/simplyrugby/club-server/internal/domain/common/errorz"
	"github.com/simplyrugby/club-server/internal/domain/entity"
	"github.com/simplyrugby/club-server/pkg/logger/types"
	"gorm.io/gorm"
)

type squadStorage interface {
	Create(ctx context.Context, squad *entity.Squad) (*entity.Squad, error)
	Get(ctx context.Context, id string) (*entity.Squad, error)
	GetAll(ctx context.Context) ([]entity.Squad, error)
}

type squadPlayerStorage interface {
	GetBySquadID(ctx context.Context, squadID string) ([]entity.Player, error)
	GetUnassigned(ctx context.Context) ([]entity.Player, error)
}

type squadJuniorStorage interface {
	GetBySquadID(ctx context.Context, squadID string) ([]entity.JuniorPlayer, error)
}

type squadCoachStorage interface {
	GetBySquadID(ctx context.Context, squadID string) ([]entity.Coach, error)
}

// SquadMembers groups everyone attached to one squad.
type SquadMembers struct {
	Squad         *entity.Squad
	Coaches       []entity.Coach
	Players       []entity.Player
	JuniorPlayers []entity.JuniorPlayer
}

type SquadService struct {
	squadStorage  squadStorage
	playerStorage squadPlayerStorage
	juniorStorage squadJuniorStorage
	coachStorage  squadCoachStorage
	logger        *types.Logger
}

func NewSquadService(
	squadStorage squadStorage,
	playerStorage squadPlayerStorage,
	juniorStorage squadJuniorStorage,
	coachStorage squadCoachStorage,
	logger *types.Logger,
) *SquadService {
	return &SquadService{
		squadStorage:  squadStorage,
		playerStorage: playerStorage,
		juniorStorage: juniorStorage,
		coachStorage:  coachStorage,
		logger:        logger,
	}
}

func (s *SquadService) Create(ctx context.Context, name, teamType string) (*entity.Squad, error) {
	if name == "" {
		return nil, errorz.Validationf("squad name is required")
	}
	squad, err := s.squadStorage.Create(ctx, &entity.Squad{
		Name:     name,
		TeamType: teamType,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Infof("squad %s (%s) created", squad.ID, name)
	return squad, nil
}

func (s *SquadService) Get(ctx context.Context, id string) (*entity.Squad, error) {
	squad, err := s.squadStorage.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorz.NotFoundf("squad %s", id)
		}
		return nil, err
	}
	return squad, nil
}

func (s *SquadService) List(ctx context.Context) ([]entity.Squad, error) {
	return s.squadStorage.GetAll(ctx)
}

// Members returns the squad with its coaches, players and junior players.
func (s *SquadService) Members(ctx context.Context, squadID string) (*SquadMembers, error) {
	squad, err := s.Get(ctx, squadID)
	if err != nil {
		return nil, err
	}

	coaches, err := s.coachStorage.GetBySquadID(ctx, squadID)
	if err != nil {
		return nil, err
	}
	players, err := s.playerStorage.GetBySquadID(ctx, squadID)
	if err != nil {
		return nil, err
	}
	juniors, err := s.juniorStorage.GetBySquadID(ctx, squadID)
	if err != nil {
		return nil, err
	}

	return &SquadMembers{
		Squad:         squad,
		Coaches:       coaches,
		Players:       players,
		JuniorPlayers: juniors,
	}, nil
}

// UnassignedPlayers lists players waiting for a squad.
func (s *SquadService) UnassignedPlayers(ctx context.Context) ([]entity.Player, error) {
	return s.playerStorage.GetUnassigned(ctx)
}
