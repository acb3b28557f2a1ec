package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/simplyrugby/club-server/internal/domain/dto"
	"github.com/simplyrugby/club-server/internal/domain/entity"
	"github.com/simplyrugby/club-server/internal/domain/service"
)

type GameHandler struct {
	gameService *service.GameService
}

func NewGameHandler(gameService *service.GameService) *GameHandler {
	return &GameHandler{gameService: gameService}
}

func (h *GameHandler) CreateGame(c echo.Context) error {
	var payload dto.CreateGame
	if err := bind(c, &payload); err != nil {
		return err
	}

	matchDate, err := parseDate(payload.MatchDate, "match_date")
	if err != nil {
		return err
	}

	game, err := h.gameService.CreateGame(c.Request().Context(), &entity.Game{
		SquadID:     payload.SquadID,
		Opponent:    payload.Opponent,
		MatchDate:   matchDate,
		KickoffTime: payload.KickoffTime,
		Location:    entity.GameLocation(payload.Location),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, game)
}

func (h *GameHandler) RecordResult(c echo.Context) error {
	var payload dto.RecordGameResult
	if err := bind(c, &payload); err != nil {
		return err
	}

	game, err := h.gameService.RecordResult(
		c.Request().Context(),
		c.Param("id"), payload.ScoreFor, payload.ScoreAgainst,
		payload.CommentsHalf1, payload.CommentsHalf2,
	)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, game)
}

func (h *GameHandler) Upcoming(c echo.Context) error {
	games, err := h.gameService.UpcomingGames(c.Request().Context(), squadFilter(c), limitParam(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, games)
}

func (h *GameHandler) Past(c echo.Context) error {
	games, err := h.gameService.PastGames(c.Request().Context(), squadFilter(c), limitParam(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, games)
}

func (h *GameHandler) CreateSeason(c echo.Context) error {
	var payload dto.CreateSeason
	if err := bind(c, &payload); err != nil {
		return err
	}

	start, err := parseDate(payload.StartDate, "start_date")
	if err != nil {
		return err
	}
	end, err := parseDate(payload.EndDate, "end_date")
	if err != nil {
		return err
	}

	season, err := h.gameService.CreateSeason(c.Request().Context(), &entity.Season{
		Name:      payload.Name,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, season)
}

func (h *GameHandler) Seasons(c echo.Context) error {
	seasons, err := h.gameService.Seasons(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, seasons)
}

func (h *GameHandler) CurrentSeason(c echo.Context) error {
	season, err := h.gameService.CurrentSeason(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, season)
}

func (h *GameHandler) CreateVenue(c echo.Context) error {
	var payload dto.CreateVenue
	if err := bind(c, &payload); err != nil {
		return err
	}

	venue, err := h.gameService.CreateVenue(c.Request().Context(), &entity.Venue{
		Name:        payload.Name,
		Address:     payload.Address,
		Capacity:    payload.Capacity,
		Facilities:  payload.Facilities,
		IsHome:      payload.IsHome,
		ContactInfo: payload.ContactInfo,
		Notes:       payload.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, venue)
}

func (h *GameHandler) Venues(c echo.Context) error {
	venues, err := h.gameService.Venues(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, venues)
}

func squadFilter(c echo.Context) *string {
	if squadID := c.QueryParam("squad_id"); squadID != "" {
		return &squadID
	}
	return nil
}

func limitParam(c echo.Context) int {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	return limit
}
