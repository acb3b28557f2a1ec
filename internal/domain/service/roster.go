package service

import (
	"context"
	"errors"

	"github.com/simplyrugby/club-server/internal/domain/common/errorz"
	"github.com/simplyrugby/club-server/internal/domain/entity"
	"github.com/simplyrugby/club-server/pkg/logger/types"
	"gorm.io/gorm"
)

type rosterPlayerStorage interface {
	Get(ctx context.Context, id string) (*entity.Player, error)
	UpdateSquad(ctx context.Context, playerID string, squadID *string) error
}

type rosterSquadStorage interface {
	Get(ctx context.Context, id string) (*entity.Squad, error)
}

type RosterService struct {
	playerStorage rosterPlayerStorage
	squadStorage  rosterSquadStorage
	authorizer    *SquadAuthorizer
	logger        *types.Logger
}

func NewRosterService(
	playerStorage rosterPlayerStorage,
	squadStorage rosterSquadStorage,
	authorizer *SquadAuthorizer,
	logger *types.Logger,
) *RosterService {
	return &RosterService{
		playerStorage: playerStorage,
		squadStorage:  squadStorage,
		authorizer:    authorizer,
		logger:        logger,
	}
}

// AssignPlayer moves a player into a squad. Transfers out of another coach's
// squad are rejected: the acting coach must manage both the target squad and,
// when the player is already assigned elsewhere, the old squad too. The squad
// reference changes in one atomic update, so the player is never in two
// squads and never in none mid-transfer.
func (s *RosterService) AssignPlayer(ctx context.Context, squadID, playerID, actingCoachID string) error {
	if _, err := s.squadStorage.Get(ctx, squadID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorz.NotFoundf("squad %s", squadID)
		}
		return err
	}

	player, err := s.playerStorage.Get(ctx, playerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorz.NotFoundf("player %s", playerID)
		}
		return err
	}

	if err = s.authorizer.Authorize(ctx, actingCoachID, squadID); err != nil {
		return err
	}

	if player.SquadID != nil && *player.SquadID != squadID {
		if err = s.authorizer.Authorize(ctx, actingCoachID, *player.SquadID); err != nil {
			return err
		}
	}

	if err = s.playerStorage.UpdateSquad(ctx, playerID, &squadID); err != nil {
		return err
	}

	s.logger.Infof("player %s assigned to squad %s by coach %s", playerID, squadID, actingCoachID)
	return nil
}

// RemovePlayer clears the player's squad reference. Removing a player who is
// not a member of the squad is not an error; the returned bool reports
// whether a membership was actually cleared.
func (s *RosterService) RemovePlayer(ctx context.Context, squadID, playerID, actingCoachID string) (bool, error) {
	if _, err := s.squadStorage.Get(ctx, squadID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, errorz.NotFoundf("squad %s", squadID)
		}
		return false, err
	}

	player, err := s.playerStorage.Get(ctx, playerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, errorz.NotFoundf("player %s", playerID)
		}
		return false, err
	}

	if err = s.authorizer.Authorize(ctx, actingCoachID, squadID); err != nil {
		return false, err
	}

	if player.SquadID == nil || *player.SquadID != squadID {
		return false, nil
	}

	if err = s.playerStorage.UpdateSquad(ctx, playerID, nil); err != nil {
		return false, err
	}

	s.logger.Infof("player %s removed from squad %s by coach %s", playerID, squadID, actingCoachID)
	return true, nil
}
