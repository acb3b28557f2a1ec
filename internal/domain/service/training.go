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

type trainingPlanStorage interface {
	CreateWithSessions(ctx context.Context, plan *entity.TrainingPlan, sessions []entity.TrainingSession) error
	Get(ctx context.Context, id string) (*entity.TrainingPlan, error)
	GetByCoachID(ctx context.Context, coachID string) ([]entity.TrainingPlan, error)
	Update(ctx context.Context, plan *entity.TrainingPlan) (*entity.TrainingPlan, error)
}

type trainingSessionStorage interface {
	Get(ctx context.Context, id string) (*entity.TrainingSession, error)
	GetByPlanID(ctx context.Context, planID string) ([]entity.TrainingSession, error)
	UpdateStatus(ctx context.Context, id string, status entity.SessionStatus) error
}

type trainingAttendanceStorage interface {
	GetByPlayerAndSession(ctx context.Context, playerID, sessionID string) (*entity.PlayerAttendance, error)
	Create(ctx context.Context, attendance *entity.PlayerAttendance) (*entity.PlayerAttendance, error)
	Update(ctx context.Context, attendance *entity.PlayerAttendance) (*entity.PlayerAttendance, error)
}

type trainingPlayerStorage interface {
	Get(ctx context.Context, id string) (*entity.Player, error)
}

type trainingSquadStorage interface {
	Get(ctx context.Context, id string) (*entity.Squad, error)
}

type TrainingService struct {
	planStorage       trainingPlanStorage
	sessionStorage    trainingSessionStorage
	attendanceStorage trainingAttendanceStorage
	playerStorage     trainingPlayerStorage
	squadStorage      trainingSquadStorage
	logger            *types.Logger
}

func NewTrainingService(
	planStorage trainingPlanStorage,
	sessionStorage trainingSessionStorage,
	attendanceStorage trainingAttendanceStorage,
	playerStorage trainingPlayerStorage,
	squadStorage trainingSquadStorage,
	logger *types.Logger,
) *TrainingService {
	return &TrainingService{
		planStorage:       planStorage,
		sessionStorage:    sessionStorage,
		attendanceStorage: attendanceStorage,
		playerStorage:     playerStorage,
		squadStorage:      squadStorage,
		logger:            logger,
	}
}

// CreatePlan validates the schedule, generates every session in the date
// range and persists plan plus sessions as one unit of work.
func (s *TrainingService) CreatePlan(
	ctx context.Context,
	coachID, squadID, title, description string,
	startDate, endDate time.Time,
	frequency entity.Frequency,
) (*entity.TrainingPlan, error) {
	if title == "" {
		return nil, errorz.Validationf("title is required")
	}
	if startDate.After(endDate) {
		return nil, errorz.Validationf("start date %s is after end date %s",
			startDate.Format("2006-01-02"), endDate.Format("2006-01-02"))
	}
	if !frequency.Valid() {
		return nil, errorz.Validationf("unknown frequency %q", frequency)
	}

	if _, err := s.squadStorage.Get(ctx, squadID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorz.NotFoundf("squad %s", squadID)
		}
		return nil, err
	}

	plan := &entity.TrainingPlan{
		CoachID:     coachID,
		SquadID:     squadID,
		Title:       title,
		Description: description,
		StartDate:   startDate,
		EndDate:     endDate,
		Frequency:   frequency,
	}

	sessions := generateSessions(plan)
	if err := s.planStorage.CreateWithSessions(ctx, plan, sessions); err != nil {
		return nil, err
	}

	s.logger.Infof("training plan %s created with %d sessions (coach %s, squad %s)",
		plan.ID, len(sessions), coachID, squadID)
	return plan, nil
}

// generateSessions materializes the full, date-ordered session sequence for
// a plan. Callers must not invoke it twice for the same persisted plan:
// generation is append-only and would duplicate sessions.
func generateSessions(plan *entity.TrainingPlan) []entity.TrainingSession {
	var sessions []entity.TrainingSession
	for _, date := range sessionDates(plan.StartDate, plan.EndDate, plan.Frequency) {
		sessions = append(sessions, entity.TrainingSession{
			Date:      date,
			StartTime: entity.DefaultSessionStart,
			EndTime:   entity.DefaultSessionEnd,
			Status:    entity.SessionScheduled,
		})
	}
	return sessions
}

// sessionDates steps from start to end by the plan frequency. The monthly
// step keeps the start date's day-of-month as anchor and clamps to the last
// day of shorter months, so Jan 31 yields Feb 28 (29) and then Mar 31 again.
func sessionDates(start, end time.Time, frequency entity.Frequency) []time.Time {
	var dates []time.Time
	switch frequency {
	case entity.FrequencyWeekly, entity.FrequencyBiweekly:
		step := 7
		if frequency == entity.FrequencyBiweekly {
			step = 14
		}
		for date := start; !date.After(end); date = date.AddDate(0, 0, step) {
			dates = append(dates, date)
		}
	case entity.FrequencyMonthly:
		for i := 0; ; i++ {
			date := monthlyOccurrence(start, i)
			if date.After(end) {
				break
			}
			dates = append(dates, date)
		}
	}
	return dates
}

func monthlyOccurrence(start time.Time, months int) time.Time {
	firstOfMonth := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, start.Location()).
		AddDate(0, months, 0)
	day := start.Day()
	if last := daysInMonth(firstOfMonth.Year(), firstOfMonth.Month()); day > last {
		day = last
	}
	return time.Date(firstOfMonth.Year(), firstOfMonth.Month(), day,
		start.Hour(), start.Minute(), 0, 0, start.Location())
}

func daysInMonth(year int, month time.Month) int {
	// day zero of the next month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// GetPlan returns a plan with its sessions; only the owning coach may view it.
func (s *TrainingService) GetPlan(ctx context.Context, planID, actingCoachID string) (*entity.TrainingPlan, []entity.TrainingSession, error) {
	plan, err := s.planStorage.Get(ctx, planID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, errorz.NotFoundf("training plan %s", planID)
		}
		return nil, nil, err
	}
	if plan.CoachID != actingCoachID {
		return nil, nil, errorz.Forbiddenf("training plan %s belongs to another coach", planID)
	}

	sessions, err := s.sessionStorage.GetByPlanID(ctx, planID)
	if err != nil {
		return nil, nil, err
	}
	return plan, sessions, nil
}

// GetPlansByCoach returns all plans owned by a coach, newest first.
func (s *TrainingService) GetPlansByCoach(ctx context.Context, coachID string) ([]entity.TrainingPlan, error) {
	return s.planStorage.GetByCoachID(ctx, coachID)
}

// UpdatePlan edits the plan's fields. Existing sessions are deliberately left
// untouched: regeneration after an edit is a product decision that has not
// been taken.
func (s *TrainingService) UpdatePlan(
	ctx context.Context,
	planID, actingCoachID, title, description string,
	startDate, endDate time.Time,
	frequency entity.Frequency,
) (*entity.TrainingPlan, error) {
	if title == "" {
		return nil, errorz.Validationf("title is required")
	}
	if startDate.After(endDate) {
		return nil, errorz.Validationf("start date %s is after end date %s",
			startDate.Format("2006-01-02"), endDate.Format("2006-01-02"))
	}
	if !frequency.Valid() {
		return nil, errorz.Validationf("unknown frequency %q", frequency)
	}

	plan, err := s.planStorage.Get(ctx, planID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorz.NotFoundf("training plan %s", planID)
		}
		return nil, err
	}
	if plan.CoachID != actingCoachID {
		return nil, errorz.Forbiddenf("training plan %s belongs to another coach", planID)
	}

	plan.Title = title
	plan.Description = description
	plan.StartDate = startDate
	plan.EndDate = endDate
	plan.Frequency = frequency
	return s.planStorage.Update(ctx, plan)
}

// RecordAttendance upserts the (player, session) attendance row: the first
// recording creates it, every later one updates status and notes in place.
func (s *TrainingService) RecordAttendance(
	ctx context.Context,
	sessionID, playerID string,
	status entity.AttendanceStatus,
	notes string,
	actingCoachID string,
) (*entity.PlayerAttendance, error) {
	if !status.Valid() {
		return nil, errorz.Validationf("unknown attendance status %q", status)
	}

	if _, err := s.ownedSession(ctx, sessionID, actingCoachID); err != nil {
		return nil, err
	}

	if _, err := s.playerStorage.Get(ctx, playerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorz.NotFoundf("player %s", playerID)
		}
		return nil, err
	}

	attendance, err := s.attendanceStorage.GetByPlayerAndSession(ctx, playerID, sessionID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return s.attendanceStorage.Create(ctx, &entity.PlayerAttendance{
			PlayerID:  playerID,
			SessionID: sessionID,
			Status:    status,
			Notes:     notes,
		})
	}

	attendance.Status = status
	attendance.Notes = notes
	return s.attendanceStorage.Update(ctx, attendance)
}

// SetSessionStatus updates the session's status field only; attendance rows
// already recorded for the session are unaffected.
func (s *TrainingService) SetSessionStatus(ctx context.Context, sessionID string, status entity.SessionStatus, actingCoachID string) error {
	if !status.Valid() {
		return errorz.Validationf("unknown session status %q", status)
	}
	if _, err := s.ownedSession(ctx, sessionID, actingCoachID); err != nil {
		return err
	}
	return s.sessionStorage.UpdateStatus(ctx, sessionID, status)
}

// ownedSession resolves a session and checks the acting coach owns the plan
// behind it.
func (s *TrainingService) ownedSession(ctx context.Context, sessionID, actingCoachID string) (*entity.TrainingSession, error) {
	session, err := s.sessionStorage.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorz.NotFoundf("training session %s", sessionID)
		}
		return nil, err
	}

	plan, err := s.planStorage.Get(ctx, session.PlanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorz.NotFoundf("training plan %s", session.PlanID)
		}
		return nil, err
	}
	if plan.CoachID != actingCoachID {
		return nil, errorz.Forbiddenf("training session %s belongs to another coach", sessionID)
	}
	return session, nil
}
