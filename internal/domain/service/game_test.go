package service

import (
	"context"
	"testing"
	"time"

	"github.com/simplyrugby/club-server/internal/domain/common/errorz"
	"github.com/simplyrugby/club-server/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeGameStorage struct {
	games map[string]*entity.Game
}

func newFakeGameStorage(games ...*entity.Game) *fakeGameStorage {
	f := &fakeGameStorage{games: make(map[string]*entity.Game)}
	for _, game := range games {
		f.games[game.ID] = game
	}
	return f
}

func (f *fakeGameStorage) Create(_ context.Context, game *entity.Game) (*entity.Game, error) {
	if game.ID == "" {
		game.ID = "game-1"
	}
	f.games[game.ID] = game
	return game, nil
}

func (f *fakeGameStorage) Get(_ context.Context, id string) (*entity.Game, error) {
	if game, ok := f.games[id]; ok {
		return game, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeGameStorage) GetUpcoming(_ context.Context, from time.Time, _ *string, _ int) ([]entity.Game, error) {
	var games []entity.Game
	for _, game := range f.games {
		if !game.MatchDate.Before(from) {
			games = append(games, *game)
		}
	}
	return games, nil
}

func (f *fakeGameStorage) GetPast(_ context.Context, until time.Time, _ *string, _ int) ([]entity.Game, error) {
	var games []entity.Game
	for _, game := range f.games {
		if game.MatchDate.Before(until) {
			games = append(games, *game)
		}
	}
	return games, nil
}

func (f *fakeGameStorage) Update(_ context.Context, game *entity.Game) (*entity.Game, error) {
	f.games[game.ID] = game
	return game, nil
}

type fakeSeasonStorage struct {
	seasons []*entity.Season
}

func (f *fakeSeasonStorage) Create(_ context.Context, season *entity.Season) (*entity.Season, error) {
	f.seasons = append(f.seasons, season)
	return season, nil
}

func (f *fakeSeasonStorage) GetAll(_ context.Context) ([]entity.Season, error) {
	var seasons []entity.Season
	for _, season := range f.seasons {
		seasons = append(seasons, *season)
	}
	return seasons, nil
}

func (f *fakeSeasonStorage) GetCovering(_ context.Context, date time.Time) (*entity.Season, error) {
	for _, season := range f.seasons {
		if !date.Before(season.StartDate) && !date.After(season.EndDate) {
			return season, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSeasonStorage) GetLatest(_ context.Context) (*entity.Season, error) {
	if len(f.seasons) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	latest := f.seasons[0]
	for _, season := range f.seasons[1:] {
		if season.StartDate.After(latest.StartDate) {
			latest = season
		}
	}
	return latest, nil
}

type fakeVenueStorage struct {
	venues []*entity.Venue
}

func (f *fakeVenueStorage) Create(_ context.Context, venue *entity.Venue) (*entity.Venue, error) {
	f.venues = append(f.venues, venue)
	return venue, nil
}

func (f *fakeVenueStorage) GetAll(_ context.Context) ([]entity.Venue, error) {
	var venues []entity.Venue
	for _, venue := range f.venues {
		venues = append(venues, *venue)
	}
	return venues, nil
}

func newGameFixture(seasons ...*entity.Season) (*GameService, *fakeGameStorage, *fakeSeasonStorage) {
	games := newFakeGameStorage()
	seasonStore := &fakeSeasonStorage{seasons: seasons}
	return NewGameService(games, seasonStore, &fakeVenueStorage{}, newTestLogger()), games, seasonStore
}

func season2024() *entity.Season {
	return &entity.Season{
		ID:        "season-1",
		Name:      "2023/24",
		StartDate: date("2023-09-01"),
		EndDate:   date("2024-05-31"),
	}
}

func TestCreateGameAttachesCoveringSeason(t *testing.T) {
	svc, _, _ := newGameFixture(season2024())

	game, err := svc.CreateGame(context.Background(), &entity.Game{
		Opponent:  "Harriers RFC",
		MatchDate: date("2024-03-02"),
		Location:  entity.GameHome,
	})
	require.NoError(t, err)
	assert.Equal(t, "season-1", game.SeasonID)
}

func TestCreateGameValidation(t *testing.T) {
	svc, _, _ := newGameFixture(season2024())

	_, err := svc.CreateGame(context.Background(), &entity.Game{
		MatchDate: date("2024-03-02"),
		Location:  entity.GameHome,
	})
	assert.ErrorIs(t, err, errorz.ErrValidation)

	_, err = svc.CreateGame(context.Background(), &entity.Game{
		Opponent:  "Harriers RFC",
		MatchDate: date("2024-03-02"),
		Location:  "neutral",
	})
	assert.ErrorIs(t, err, errorz.ErrValidation)

	_, err = svc.CreateGame(context.Background(), &entity.Game{
		Opponent:  "Harriers RFC",
		MatchDate: date("2030-01-01"),
		Location:  entity.GameAway,
	})
	assert.ErrorIs(t, err, errorz.ErrValidation, "no covering season")
}

func TestRecordResultDerivesOutcome(t *testing.T) {
	tests := []struct {
		name         string
		scoreFor     int
		scoreAgainst int
		want         entity.GameResult
	}{
		{"win", 24, 10, entity.GameWon},
		{"loss", 7, 31, entity.GameLost},
		{"draw", 14, 14, entity.GameDrew},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, games, _ := newGameFixture(season2024())
			games.games["game-1"] = &entity.Game{ID: "game-1", Opponent: "Harriers RFC"}

			game, err := svc.RecordResult(context.Background(), "game-1", tt.scoreFor, tt.scoreAgainst, "solid first half", "tired legs")
			require.NoError(t, err)
			require.NotNil(t, game.Result)
			assert.Equal(t, tt.want, *game.Result)
			assert.Equal(t, tt.scoreFor, *game.ScoreFor)
			assert.Equal(t, "solid first half", game.CommentsHalf1)
		})
	}
}

func TestRecordResultErrors(t *testing.T) {
	svc, _, _ := newGameFixture(season2024())

	_, err := svc.RecordResult(context.Background(), "missing", 10, 5, "", "")
	assert.ErrorIs(t, err, errorz.ErrNotFound)

	_, err = svc.RecordResult(context.Background(), "game-1", -1, 5, "", "")
	assert.ErrorIs(t, err, errorz.ErrValidation)
}

func TestCurrentSeasonFallsBackToLatest(t *testing.T) {
	old := &entity.Season{
		ID:        "season-0",
		Name:      "2021/22",
		StartDate: date("2021-09-01"),
		EndDate:   date("2022-05-31"),
	}
	newer := &entity.Season{
		ID:        "season-1",
		Name:      "2022/23",
		StartDate: date("2022-09-01"),
		EndDate:   date("2023-05-31"),
	}
	svc, _, _ := newGameFixture(old, newer)

	season, err := svc.CurrentSeason(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "season-1", season.ID, "between seasons the most recent one wins")
}

func TestCurrentSeasonNoneExist(t *testing.T) {
	svc, _, _ := newGameFixture()

	_, err := svc.CurrentSeason(context.Background())
	assert.ErrorIs(t, err, errorz.ErrNotFound)
}

func TestCreateSeasonValidation(t *testing.T) {
	svc, _, _ := newGameFixture()

	_, err := svc.CreateSeason(context.Background(), &entity.Season{
		Name:      "2024/25",
		StartDate: date("2025-05-31"),
		EndDate:   date("2024-09-01"),
	})
	assert.ErrorIs(t, err, errorz.ErrValidation)
}
