package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/simplyrugby/club-server/internal/domain/dto"
	"github.com/simplyrugby/club-server/internal/domain/entity"
	"github.com/simplyrugby/club-server/internal/domain/service"
	"github.com/simplyrugby/club-server/internal/domain/utils/calendar"
)

type TrainingHandler struct {
	trainingService *service.TrainingService
	authorizer      *service.SquadAuthorizer
	coaches         coachResolver
}

func NewTrainingHandler(
	trainingService *service.TrainingService,
	authorizer *service.SquadAuthorizer,
	coaches coachResolver,
) *TrainingHandler {
	return &TrainingHandler{
		trainingService: trainingService,
		authorizer:      authorizer,
		coaches:         coaches,
	}
}

func (h *TrainingHandler) CreatePlan(c echo.Context) error {
	var payload dto.CreateTrainingPlan
	if err := bind(c, &payload); err != nil {
		return err
	}

	coach, err := contextCoach(c, h.coaches)
	if err != nil {
		return err
	}
	if err = h.authorizer.Authorize(c.Request().Context(), coach.ID, payload.SquadID); err != nil {
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

	plan, err := h.trainingService.CreatePlan(
		c.Request().Context(),
		coach.ID, payload.SquadID, payload.Title, payload.Description,
		start, end, entity.Frequency(payload.Frequency),
	)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dto.TrainingPlanResponse{Plan: *plan})
}

func (h *TrainingHandler) MyPlans(c echo.Context) error {
	coach, err := contextCoach(c, h.coaches)
	if err != nil {
		return err
	}

	plans, err := h.trainingService.GetPlansByCoach(c.Request().Context(), coach.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, plans)
}

func (h *TrainingHandler) GetPlan(c echo.Context) error {
	coach, err := contextCoach(c, h.coaches)
	if err != nil {
		return err
	}

	plan, sessions, err := h.trainingService.GetPlan(c.Request().Context(), c.Param("id"), coach.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.TrainingPlanResponse{Plan: *plan, Sessions: sessions})
}

func (h *TrainingHandler) UpdatePlan(c echo.Context) error {
	var payload dto.UpdateTrainingPlan
	if err := bind(c, &payload); err != nil {
		return err
	}

	coach, err := contextCoach(c, h.coaches)
	if err != nil {
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

	plan, err := h.trainingService.UpdatePlan(
		c.Request().Context(),
		c.Param("id"), coach.ID, payload.Title, payload.Description,
		start, end, entity.Frequency(payload.Frequency),
	)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.TrainingPlanResponse{Plan: *plan})
}

// ExportPlanICS serves the plan's sessions as an iCalendar download.
func (h *TrainingHandler) ExportPlanICS(c echo.Context) error {
	coach, err := contextCoach(c, h.coaches)
	if err != nil {
		return err
	}

	plan, sessions, err := h.trainingService.GetPlan(c.Request().Context(), c.Param("id"), coach.ID)
	if err != nil {
		return err
	}

	ics, err := calendar.ExportSessionsToICS(plan, sessions)
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="training.ics"`)
	return c.Blob(http.StatusOK, "text/calendar", ics)
}

func (h *TrainingHandler) RecordAttendance(c echo.Context) error {
	var payload dto.RecordAttendance
	if err := bind(c, &payload); err != nil {
		return err
	}

	coach, err := contextCoach(c, h.coaches)
	if err != nil {
		return err
	}

	attendance, err := h.trainingService.RecordAttendance(
		c.Request().Context(),
		c.Param("id"), payload.PlayerID,
		entity.AttendanceStatus(payload.Status), payload.Notes,
		coach.ID,
	)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, attendance)
}

func (h *TrainingHandler) SetSessionStatus(c echo.Context) error {
	var payload dto.SetSessionStatus
	if err := bind(c, &payload); err != nil {
		return err
	}

	coach, err := contextCoach(c, h.coaches)
	if err != nil {
		return err
	}

	if err = h.trainingService.SetSessionStatus(
		c.Request().Context(),
		c.Param("id"), entity.SessionStatus(payload.Status), coach.ID,
	); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
