package service

import (
	"context"
	"errors"
	"math"
	"sort"
	"time"

	"github.com/simplyrugby/club-server/internal/domain/common/errorz"
	"github.com/simplyrugby/club-server/internal/domain/dto"
	"github.com/simplyrugby/club-server/internal/domain/entity"
	"github.com/simplyrugby/club-server/internal/domain/utils/calendar"
	"github.com/simplyrugby/club-server/pkg/logger/types"
	"gorm.io/gorm"
)

type reportPlayerStorage interface {
	Get(ctx context.Context, id string) (*entity.Player, error)
	GetBySquadID(ctx context.Context, squadID string) ([]entity.Player, error)
}

type reportSquadStorage interface {
	Get(ctx context.Context, id string) (*entity.Squad, error)
}

type reportUserStorage interface {
	GetMany(ctx context.Context, ids []string) ([]entity.User, error)
}

type reportAssessmentStorage interface {
	GetByPlayerID(ctx context.Context, playerID string) ([]entity.SkillAssessment, error)
}

type reportAttendanceStorage interface {
	GetByPlayerID(ctx context.Context, playerID string) ([]entity.PlayerAttendance, error)
	GetBySessionID(ctx context.Context, sessionID string) ([]entity.PlayerAttendance, error)
}

type reportSessionStorage interface {
	GetCompletedByCoach(ctx context.Context, coachID string, before time.Time) ([]entity.TrainingSession, error)
	GetUpcomingByCoach(ctx context.Context, coachID string, from time.Time) ([]entity.TrainingSession, error)
	GetBetween(ctx context.Context, from, to time.Time) ([]entity.TrainingSession, error)
}

type reportGameStorage interface {
	GetBetween(ctx context.Context, from, to time.Time) ([]entity.Game, error)
}

// ReportService is the read side: skill aggregates, attendance rates,
// training history and the month calendar. It never mutates anything.
type ReportService struct {
	playerStorage     reportPlayerStorage
	squadStorage      reportSquadStorage
	userStorage       reportUserStorage
	assessmentStorage reportAssessmentStorage
	attendanceStorage reportAttendanceStorage
	sessionStorage    reportSessionStorage
	gameStorage       reportGameStorage
	logger            *types.Logger
}

func NewReportService(
	playerStorage reportPlayerStorage,
	squadStorage reportSquadStorage,
	userStorage reportUserStorage,
	assessmentStorage reportAssessmentStorage,
	attendanceStorage reportAttendanceStorage,
	sessionStorage reportSessionStorage,
	gameStorage reportGameStorage,
	logger *types.Logger,
) *ReportService {
	return &ReportService{
		playerStorage:     playerStorage,
		squadStorage:      squadStorage,
		userStorage:       userStorage,
		assessmentStorage: assessmentStorage,
		attendanceStorage: attendanceStorage,
		sessionStorage:    sessionStorage,
		gameStorage:       gameStorage,
		logger:            logger,
	}
}

// PlayerSkills reduces a player's assessment history to the latest level per
// core skill. Skills never assessed count as the neutral midpoint, so a
// fresh player averages exactly DefaultSkillLevel.
func (s *ReportService) PlayerSkills(ctx context.Context, playerID string) (*dto.PlayerSkills, error) {
	player, err := s.playerStorage.Get(ctx, playerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorz.NotFoundf("player %s", playerID)
		}
		return nil, err
	}

	assessments, err := s.assessmentStorage.GetByPlayerID(ctx, playerID)
	if err != nil {
		return nil, err
	}

	skills := &dto.PlayerSkills{
		PlayerID: player.ID,
		Levels:   latestLevels(assessments),
	}
	skills.Average = meanLevel(skills.Levels)

	users, err := s.userStorage.GetMany(ctx, []string{player.UserID})
	if err != nil {
		return nil, err
	}
	if len(users) == 1 {
		skills.Name = users[0].Name
	}
	return skills, nil
}

// SquadSkillAverages builds the per-player skill rows for a squad plus the
// squad-wide average per skill.
func (s *ReportService) SquadSkillAverages(ctx context.Context, squadID string) (*dto.SquadSkillReport, error) {
	if _, err := s.squadStorage.Get(ctx, squadID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorz.NotFoundf("squad %s", squadID)
		}
		return nil, err
	}

	players, err := s.playerStorage.GetBySquadID(ctx, squadID)
	if err != nil {
		return nil, err
	}

	names, err := s.playerNames(ctx, players)
	if err != nil {
		return nil, err
	}

	report := &dto.SquadSkillReport{
		SquadID:  squadID,
		Averages: make(map[string]float64, len(entity.CoreSkills)),
	}

	totals := make(map[string]int, len(entity.CoreSkills))
	for _, player := range players {
		assessments, err := s.assessmentStorage.GetByPlayerID(ctx, player.ID)
		if err != nil {
			return nil, err
		}
		levels := latestLevels(assessments)
		for skill, level := range levels {
			totals[skill] += level
		}
		report.Players = append(report.Players, dto.PlayerSkills{
			PlayerID: player.ID,
			Name:     names[player.UserID],
			Levels:   levels,
			Average:  meanLevel(levels),
		})
	}

	if len(players) > 0 {
		for _, skill := range entity.CoreSkills {
			report.Averages[skill] = round1(float64(totals[skill]) / float64(len(players)))
		}
	}
	return report, nil
}

// AttendanceRate is the player's present percentage over all recorded
// attendance, rounded to the nearest whole percent; zero when nothing has
// been recorded.
func (s *ReportService) AttendanceRate(ctx context.Context, playerID string) (*dto.AttendanceRateResponse, error) {
	if _, err := s.playerStorage.Get(ctx, playerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorz.NotFoundf("player %s", playerID)
		}
		return nil, err
	}

	records, err := s.attendanceStorage.GetByPlayerID(ctx, playerID)
	if err != nil {
		return nil, err
	}

	present := 0
	for _, record := range records {
		if record.Status == entity.AttendancePresent {
			present++
		}
	}
	return &dto.AttendanceRateResponse{
		PlayerID: playerID,
		Rate:     ratePercent(present, len(records)),
		Recorded: len(records),
	}, nil
}

// TrainingHistory lists the coach's completed sessions, newest first, each
// with its attendance tallies.
func (s *ReportService) TrainingHistory(ctx context.Context, coachID string) ([]dto.SessionReport, error) {
	sessions, err := s.sessionStorage.GetCompletedByCoach(ctx, coachID, time.Now())
	if err != nil {
		return nil, err
	}

	reports := make([]dto.SessionReport, 0, len(sessions))
	for _, session := range sessions {
		records, err := s.attendanceStorage.GetBySessionID(ctx, session.ID)
		if err != nil {
			return nil, err
		}

		report := dto.SessionReport{Session: session}
		for _, record := range records {
			switch record.Status {
			case entity.AttendancePresent:
				report.Present++
			case entity.AttendanceAbsent:
				report.Absent++
			case entity.AttendanceExcused:
				report.Excused++
			}
		}
		report.AttendanceRate = ratePercent(report.Present, len(records))
		reports = append(reports, report)
	}
	return reports, nil
}

// UpcomingSessions lists the coach's sessions from today on, soonest first.
func (s *ReportService) UpcomingSessions(ctx context.Context, coachID string) ([]entity.TrainingSession, error) {
	return s.sessionStorage.GetUpcomingByCoach(ctx, coachID, time.Now())
}

// MonthCalendar lays the month's training sessions and games over a
// Monday-first grid.
func (s *ReportService) MonthCalendar(ctx context.Context, year int, month time.Month) (*dto.MonthCalendar, error) {
	if month < time.January || month > time.December {
		return nil, errorz.Validationf("month %d is outside 1..12", month)
	}

	first, last := calendar.MonthBounds(year, month)
	sessions, err := s.sessionStorage.GetBetween(ctx, first, last)
	if err != nil {
		return nil, err
	}
	games, err := s.gameStorage.GetBetween(ctx, first, last)
	if err != nil {
		return nil, err
	}

	cal := &dto.MonthCalendar{
		Year:  year,
		Month: int(month),
		Weeks: calendar.MonthGrid(year, month),
		Days:  make(map[int]dto.CalendarDay),
	}
	for _, session := range sessions {
		day := cal.Days[session.Date.Day()]
		day.Day = session.Date.Day()
		day.Sessions = append(day.Sessions, session)
		cal.Days[session.Date.Day()] = day
	}
	for _, game := range games {
		day := cal.Days[game.MatchDate.Day()]
		day.Day = game.MatchDate.Day()
		day.Games = append(day.Games, game)
		cal.Days[game.MatchDate.Day()] = day
	}
	return cal, nil
}

func (s *ReportService) playerNames(ctx context.Context, players []entity.Player) (map[string]string, error) {
	if len(players) == 0 {
		return map[string]string{}, nil
	}
	ids := make([]string, 0, len(players))
	for _, player := range players {
		ids = append(ids, player.UserID)
	}
	users, err := s.userStorage.GetMany(ctx, ids)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(users))
	for _, user := range users {
		names[user.ID] = user.Name
	}
	return names, nil
}

// latestLevels picks the most recent level per core skill, defaulting to the
// neutral midpoint for skills with no history.
func latestLevels(assessments []entity.SkillAssessment) map[string]int {
	sort.SliceStable(assessments, func(i, j int) bool {
		return assessments[i].CreatedAt.Before(assessments[j].CreatedAt)
	})

	levels := make(map[string]int, len(entity.CoreSkills))
	for _, skill := range entity.CoreSkills {
		levels[skill] = entity.DefaultSkillLevel
	}
	for _, assessment := range assessments {
		if _, ok := levels[assessment.SkillType]; ok {
			levels[assessment.SkillType] = assessment.SkillLevel
		}
	}
	return levels
}

func meanLevel(levels map[string]int) float64 {
	if len(levels) == 0 {
		return 0
	}
	sum := 0
	for _, level := range levels {
		sum += level
	}
	return round1(float64(sum) / float64(len(levels)))
}

func ratePercent(hits, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(hits) / float64(total) * 100))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
