package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/simplyrugby/club-server/internal/domain/common/errorz"
	"github.com/simplyrugby/club-server/internal/domain/dto"
	"github.com/simplyrugby/club-server/internal/domain/service"
)

type ReportHandler struct {
	reportService *service.ReportService
	skillService  *service.SkillService
	coaches       coachResolver
}

func NewReportHandler(
	reportService *service.ReportService,
	skillService *service.SkillService,
	coaches coachResolver,
) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		skillService:  skillService,
		coaches:       coaches,
	}
}

func (h *ReportHandler) PlayerSkills(c echo.Context) error {
	skills, err := h.reportService.PlayerSkills(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, skills)
}

func (h *ReportHandler) SquadSkills(c echo.Context) error {
	report, err := h.reportService.SquadSkillAverages(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}

func (h *ReportHandler) PlayerAttendance(c echo.Context) error {
	rate, err := h.reportService.AttendanceRate(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rate)
}

func (h *ReportHandler) TrainingHistory(c echo.Context) error {
	coach, err := contextCoach(c, h.coaches)
	if err != nil {
		return err
	}

	history, err := h.reportService.TrainingHistory(c.Request().Context(), coach.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, history)
}

func (h *ReportHandler) UpcomingSessions(c echo.Context) error {
	coach, err := contextCoach(c, h.coaches)
	if err != nil {
		return err
	}

	sessions, err := h.reportService.UpcomingSessions(c.Request().Context(), coach.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessions)
}

func (h *ReportHandler) MonthCalendar(c echo.Context) error {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		return errorz.Validationf("year must be a number")
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		return errorz.Validationf("month must be a number")
	}

	cal, err := h.reportService.MonthCalendar(c.Request().Context(), year, time.Month(month))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cal)
}

func (h *ReportHandler) RecordSkillAssessment(c echo.Context) error {
	var payload dto.RecordSkillAssessment
	if err := bind(c, &payload); err != nil {
		return err
	}

	coach, err := contextCoach(c, h.coaches)
	if err != nil {
		return err
	}

	assessment, err := h.skillService.RecordAssessment(
		c.Request().Context(),
		coach.ID, payload.PlayerID, payload.SkillType, payload.SkillLevel, payload.Notes,
	)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, assessment)
}

func (h *ReportHandler) PlayerAssessmentHistory(c echo.Context) error {
	assessments, err := h.skillService.PlayerAssessments(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, assessments)
}
