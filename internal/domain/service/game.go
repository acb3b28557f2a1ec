package service

import (
	"context"
	"errors"
	"time"

	"github.com/simplyrugby/club-server/internal/domain/common/errorz"
	"github.com/simplyrugby/club-server/internal/domain/entity"
	"github.com/simplyrugby/club-server/pkg/logger/types"
	"gorm.io/gorm"
)

type gameStorage interface {
	Create(ctx context.Context, game *entity.Game) (*entity.Game, error)
	Get(ctx context.Context, id string) (*entity.Game, error)
	GetUpcoming(ctx context.Context, from time.Time, squadID *string, limit int) ([]entity.Game, error)
	GetPast(ctx context.Context, until time.Time, squadID *string, limit int) ([]entity.Game, error)
	Update(ctx context.Context, game *entity.Game) (*entity.Game, error)
}

type seasonStorage interface {
	Create(ctx context.Context, season *entity.Season) (*entity.Season, error)
	GetAll(ctx context.Context) ([]entity.Season, error)
	GetCovering(ctx context.Context, date time.Time) (*entity.Season, error)
	GetLatest(ctx context.Context) (*entity.Season, error)
}

type venueStorage interface {
	Create(ctx context.Context, venue *entity.Venue) (*entity.Venue, error)
	GetAll(ctx context.Context) ([]entity.Venue, error)
}

type GameService struct {
	gameStorage   gameStorage
	seasonStorage seasonStorage
	venueStorage  venueStorage
	logger        *types.Logger
}

func NewGameService(
	gameStorage gameStorage,
	seasonStorage seasonStorage,
	venueStorage venueStorage,
	logger *types.Logger,
) *GameService {
	return &GameService{
		gameStorage:   gameStorage,
		seasonStorage: seasonStorage,
		venueStorage:  venueStorage,
		logger:        logger,
	}
}

// CreateGame schedules a fixture inside the season that covers its match
// date. Without a covering season the fixture cannot be scheduled.
func (s *GameService) CreateGame(ctx context.Context, game *entity.Game) (*entity.Game, error) {
	if game.Opponent == "" {
		return nil, errorz.Validationf("opponent is required")
	}
	if !game.Location.Valid() {
		return nil, errorz.Validationf("unknown game location %q", game.Location)
	}

	season, err := s.seasonStorage.GetCovering(ctx, game.MatchDate)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorz.Validationf("no season covers %s", game.MatchDate.Format("2006-01-02"))
		}
		return nil, err
	}
	game.SeasonID = season.ID

	return s.gameStorage.Create(ctx, game)
}

// RecordResult stores the final score and the comments for both halves; the
// won/lost/drew outcome is derived from the score, never supplied.
func (s *GameService) RecordResult(ctx context.Context, gameID string, scoreFor, scoreAgainst int, commentsHalf1, commentsHalf2 string) (*entity.Game, error) {
	if scoreFor < 0 || scoreAgainst < 0 {
		return nil, errorz.Validationf("scores must not be negative")
	}

	game, err := s.gameStorage.Get(ctx, gameID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorz.NotFoundf("game %s", gameID)
		}
		return nil, err
	}

	result := entity.GameDrew
	switch {
	case scoreFor > scoreAgainst:
		result = entity.GameWon
	case scoreFor < scoreAgainst:
		result = entity.GameLost
	}

	game.ScoreFor = &scoreFor
	game.ScoreAgainst = &scoreAgainst
	game.Result = &result
	game.CommentsHalf1 = commentsHalf1
	game.CommentsHalf2 = commentsHalf2

	updated, err := s.gameStorage.Update(ctx, game)
	if err != nil {
		return nil, err
	}
	s.logger.Infof("game %s result recorded: %d-%d (%s)", gameID, scoreFor, scoreAgainst, result)
	return updated, nil
}

func (s *GameService) UpcomingGames(ctx context.Context, squadID *string, limit int) ([]entity.Game, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.gameStorage.GetUpcoming(ctx, time.Now(), squadID, limit)
}

func (s *GameService) PastGames(ctx context.Context, squadID *string, limit int) ([]entity.Game, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.gameStorage.GetPast(ctx, time.Now(), squadID, limit)
}

// CurrentSeason is the season covering today, falling back to the most
// recently started one between seasons.
func (s *GameService) CurrentSeason(ctx context.Context) (*entity.Season, error) {
	season, err := s.seasonStorage.GetCovering(ctx, time.Now())
	if err == nil {
		return season, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	season, err = s.seasonStorage.GetLatest(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorz.NotFoundf("no seasons exist")
		}
		return nil, err
	}
	return season, nil
}

func (s *GameService) CreateSeason(ctx context.Context, season *entity.Season) (*entity.Season, error) {
	if season.Name == "" {
		return nil, errorz.Validationf("season name is required")
	}
	if season.StartDate.After(season.EndDate) {
		return nil, errorz.Validationf("season start date is after end date")
	}
	return s.seasonStorage.Create(ctx, season)
}

func (s *GameService) Seasons(ctx context.Context) ([]entity.Season, error) {
	return s.seasonStorage.GetAll(ctx)
}

func (s *GameService) CreateVenue(ctx context.Context, venue *entity.Venue) (*entity.Venue, error) {
	if venue.Name == "" {
		return nil, errorz.Validationf("venue name is required")
	}
	return s.venueStorage.Create(ctx, venue)
}

func (s *GameService) Venues(ctx context.Context) ([]entity.Venue, error) {
	return s.venueStorage.GetAll(ctx)
}
