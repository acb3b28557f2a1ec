package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/simplyrugby/club-server/internal/domain/dto"
	"github.com/simplyrugby/club-server/internal/domain/service"
)

type RosterHandler struct {
	rosterService *service.RosterService
	squadService  *service.SquadService
	coaches       coachResolver
}

func NewRosterHandler(
	rosterService *service.RosterService,
	squadService *service.SquadService,
	coaches coachResolver,
) *RosterHandler {
	return &RosterHandler{
		rosterService: rosterService,
		squadService:  squadService,
		coaches:       coaches,
	}
}

func (h *RosterHandler) CreateSquad(c echo.Context) error {
	var payload dto.CreateSquad
	if err := bind(c, &payload); err != nil {
		return err
	}

	squad, err := h.squadService.Create(c.Request().Context(), payload.Name, payload.TeamType)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, squad)
}

func (h *RosterHandler) ListSquads(c echo.Context) error {
	squads, err := h.squadService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, squads)
}

func (h *RosterHandler) SquadMembers(c echo.Context) error {
	members, err := h.squadService.Members(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, members)
}

func (h *RosterHandler) UnassignedPlayers(c echo.Context) error {
	players, err := h.squadService.UnassignedPlayers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, players)
}

func (h *RosterHandler) AssignPlayer(c echo.Context) error {
	var payload dto.AssignPlayer
	if err := bind(c, &payload); err != nil {
		return err
	}

	coach, err := contextCoach(c, h.coaches)
	if err != nil {
		return err
	}
	if err = h.rosterService.AssignPlayer(c.Request().Context(), c.Param("id"), payload.PlayerID, coach.ID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *RosterHandler) RemovePlayer(c echo.Context) error {
	coach, err := contextCoach(c, h.coaches)
	if err != nil {
		return err
	}

	removed, err := h.rosterService.RemovePlayer(c.Request().Context(), c.Param("id"), c.Param("playerId"), coach.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.RemovePlayerResponse{Removed: removed})
}
