package service

import (
	"context"
	"errors"

	"github.com/simplyrugby/club-server/internal/domain/common/errorz"
	"github.com/simplyrugby/club-server/internal/domain/entity"
	"gorm.io/gorm"
)

type authzCoachStorage interface {
	Get(ctx context.Context, id string) (*entity.Coach, error)
}

type authzPlanStorage interface {
	ExistsForCoachAndSquad(ctx context.Context, coachID, squadID string) (bool, error)
}

// SquadAuthorizer answers the one question both roster and training mutations
// keep asking: does this coach manage this squad? A coach manages a squad
// either through the direct link on their profile or through any training
// plan they own for it.
type SquadAuthorizer struct {
	coachStorage authzCoachStorage
	planStorage  authzPlanStorage
}

func NewSquadAuthorizer(coachStorage authzCoachStorage, planStorage authzPlanStorage) *SquadAuthorizer {
	return &SquadAuthorizer{
		coachStorage: coachStorage,
		planStorage:  planStorage,
	}
}

// Authorize returns nil when the coach manages the squad, ErrForbidden when
// not, ErrNotFound when the coach does not exist.
func (a *SquadAuthorizer) Authorize(ctx context.Context, coachID, squadID string) error {
	coach, err := a.coachStorage.Get(ctx, coachID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorz.NotFoundf("coach %s", coachID)
		}
		return err
	}

	if coach.SquadID != nil && *coach.SquadID == squadID {
		return nil
	}

	ok, err := a.planStorage.ExistsForCoachAndSquad(ctx, coachID, squadID)
	if err != nil {
		return err
	}
	if !ok {
		return errorz.Forbiddenf("coach %s does not manage squad %s", coachID, squadID)
	}
	return nil
}
