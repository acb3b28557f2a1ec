package service

import (
	"context"
	"testing"
	"time"

	"github.com/simplyrugby/club-server/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeAssessmentStorage struct {
	byPlayer map[string][]entity.SkillAssessment
}

func (f *fakeAssessmentStorage) GetByPlayerID(_ context.Context, playerID string) ([]entity.SkillAssessment, error) {
	return f.byPlayer[playerID], nil
}

func (f *fakeAssessmentStorage) Create(_ context.Context, assessment *entity.SkillAssessment) (*entity.SkillAssessment, error) {
	f.byPlayer[assessment.PlayerID] = append(f.byPlayer[assessment.PlayerID], *assessment)
	return assessment, nil
}

type fakeReportSessionStorage struct {
	completed []entity.TrainingSession
	upcoming  []entity.TrainingSession
	between   []entity.TrainingSession
}

func (f *fakeReportSessionStorage) GetCompletedByCoach(_ context.Context, _ string, _ time.Time) ([]entity.TrainingSession, error) {
	return f.completed, nil
}

func (f *fakeReportSessionStorage) GetUpcomingByCoach(_ context.Context, _ string, _ time.Time) ([]entity.TrainingSession, error) {
	return f.upcoming, nil
}

func (f *fakeReportSessionStorage) GetBetween(_ context.Context, _, _ time.Time) ([]entity.TrainingSession, error) {
	return f.between, nil
}

type fakeReportGameStorage struct {
	between []entity.Game
}

func (f *fakeReportGameStorage) GetBetween(_ context.Context, _, _ time.Time) ([]entity.Game, error) {
	return f.between, nil
}

func newReportFixture(
	assessments *fakeAssessmentStorage,
	attendance *fakeAttendanceStorage,
	sessions *fakeReportSessionStorage,
	games *fakeReportGameStorage,
) *ReportService {
	players := newFakePlayerStorage(
		&entity.Player{ID: "player-1", UserID: "user-1", SquadID: strptr("squad-1")},
	)
	squads := newFakeSquadStorage(&entity.Squad{ID: "squad-1"})
	users := newFakeUserStorage(&entity.User{ID: "user-1", Name: "Jo Smith"})
	return NewReportService(players, squads, users, assessments, attendance, sessions, games, newTestLogger())
}

func TestPlayerSkillsDefaultsToMidpoint(t *testing.T) {
	assessments := &fakeAssessmentStorage{byPlayer: map[string][]entity.SkillAssessment{}}
	svc := newReportFixture(assessments, newFakeAttendanceStorage(), &fakeReportSessionStorage{}, &fakeReportGameStorage{})

	skills, err := svc.PlayerSkills(context.Background(), "player-1")
	require.NoError(t, err)

	assert.Len(t, skills.Levels, len(entity.CoreSkills))
	for _, skill := range entity.CoreSkills {
		assert.Equal(t, entity.DefaultSkillLevel, skills.Levels[skill])
	}
	assert.Equal(t, float64(entity.DefaultSkillLevel), skills.Average)
	assert.Equal(t, "Jo Smith", skills.Name)
}

func TestPlayerSkillsUsesLatestAssessment(t *testing.T) {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	assessments := &fakeAssessmentStorage{byPlayer: map[string][]entity.SkillAssessment{
		"player-1": {
			{PlayerID: "player-1", SkillType: "Passing", SkillLevel: 2, CreatedAt: base},
			{PlayerID: "player-1", SkillType: "Passing", SkillLevel: 4, CreatedAt: base.Add(24 * time.Hour)},
			{PlayerID: "player-1", SkillType: "Tackling", SkillLevel: 2, CreatedAt: base},
			{PlayerID: "player-1", SkillType: "Kicking", SkillLevel: 3, CreatedAt: base},
		},
	}}
	svc := newReportFixture(assessments, newFakeAttendanceStorage(), &fakeReportSessionStorage{}, &fakeReportGameStorage{})

	skills, err := svc.PlayerSkills(context.Background(), "player-1")
	require.NoError(t, err)

	assert.Equal(t, 4, skills.Levels["Passing"], "newest assessment wins")
	assert.Equal(t, 2, skills.Levels["Tackling"])
	assert.Equal(t, 3, skills.Levels["Kicking"])
	assert.Equal(t, entity.DefaultSkillLevel, skills.Levels["Running"])
	assert.Equal(t, entity.DefaultSkillLevel, skills.Levels["Teamwork"])
	// (4+2+3+3+3)/5
	assert.Equal(t, 3.0, skills.Average)
}

func TestSquadSkillAverages(t *testing.T) {
	assessments := &fakeAssessmentStorage{byPlayer: map[string][]entity.SkillAssessment{
		"player-1": {
			{PlayerID: "player-1", SkillType: "Passing", SkillLevel: 5},
		},
	}}
	svc := newReportFixture(assessments, newFakeAttendanceStorage(), &fakeReportSessionStorage{}, &fakeReportGameStorage{})

	report, err := svc.SquadSkillAverages(context.Background(), "squad-1")
	require.NoError(t, err)

	require.Len(t, report.Players, 1)
	assert.Equal(t, 5.0, report.Averages["Passing"])
	assert.Equal(t, 3.0, report.Averages["Tackling"])
}

func TestAttendanceRate(t *testing.T) {
	attendance := newFakeAttendanceStorage()
	for i, status := range []entity.AttendanceStatus{
		entity.AttendancePresent, entity.AttendancePresent, entity.AttendanceAbsent,
	} {
		_, err := attendance.Create(context.Background(), &entity.PlayerAttendance{
			PlayerID:  "player-1",
			SessionID: []string{"s1", "s2", "s3"}[i],
			Status:    status,
		})
		require.NoError(t, err)
	}
	svc := newReportFixture(&fakeAssessmentStorage{byPlayer: map[string][]entity.SkillAssessment{}}, attendance, &fakeReportSessionStorage{}, &fakeReportGameStorage{})

	rate, err := svc.AttendanceRate(context.Background(), "player-1")
	require.NoError(t, err)

	// round(2/3 * 100) = 67
	assert.Equal(t, 67, rate.Rate)
	assert.Equal(t, 3, rate.Recorded)
}

func TestAttendanceRateNoRecords(t *testing.T) {
	svc := newReportFixture(&fakeAssessmentStorage{byPlayer: map[string][]entity.SkillAssessment{}}, newFakeAttendanceStorage(), &fakeReportSessionStorage{}, &fakeReportGameStorage{})

	rate, err := svc.AttendanceRate(context.Background(), "player-1")
	require.NoError(t, err)
	assert.Zero(t, rate.Rate)
	assert.Zero(t, rate.Recorded)
}

func TestTrainingHistoryTallies(t *testing.T) {
	sessions := &fakeReportSessionStorage{completed: []entity.TrainingSession{
		{ID: "session-1", Status: entity.SessionCompleted},
	}}
	attendance := newFakeAttendanceStorage()
	for playerID, status := range map[string]entity.AttendanceStatus{
		"p1": entity.AttendancePresent,
		"p2": entity.AttendancePresent,
		"p3": entity.AttendanceAbsent,
		"p4": entity.AttendanceExcused,
	} {
		_, err := attendance.Create(context.Background(), &entity.PlayerAttendance{
			PlayerID: playerID, SessionID: "session-1", Status: status,
		})
		require.NoError(t, err)
	}
	svc := newReportFixture(&fakeAssessmentStorage{byPlayer: map[string][]entity.SkillAssessment{}}, attendance, sessions, &fakeReportGameStorage{})

	history, err := svc.TrainingHistory(context.Background(), "coach-1")
	require.NoError(t, err)

	require.Len(t, history, 1)
	assert.Equal(t, 2, history[0].Present)
	assert.Equal(t, 1, history[0].Absent)
	assert.Equal(t, 1, history[0].Excused)
	assert.Equal(t, 50, history[0].AttendanceRate)
}

func TestMonthCalendarBucketsEvents(t *testing.T) {
	sessions := &fakeReportSessionStorage{between: []entity.TrainingSession{
		{ID: "session-1", Date: time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)},
		{ID: "session-2", Date: time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)},
	}}
	games := &fakeReportGameStorage{between: []entity.Game{
		{ID: "game-1", MatchDate: time.Date(2024, 1, 13, 0, 0, 0, 0, time.UTC)},
	}}
	svc := newReportFixture(&fakeAssessmentStorage{byPlayer: map[string][]entity.SkillAssessment{}}, newFakeAttendanceStorage(), sessions, games)

	cal, err := svc.MonthCalendar(context.Background(), 2024, time.January)
	require.NoError(t, err)

	assert.Len(t, cal.Days[8].Sessions, 2)
	assert.Len(t, cal.Days[13].Games, 1)
	assert.Len(t, cal.Weeks, 5)

	_, err = svc.MonthCalendar(context.Background(), 2024, time.Month(13))
	assert.Error(t, err)
}

func TestPlayerSkillsUnknownPlayer(t *testing.T) {
	svc := newReportFixture(&fakeAssessmentStorage{byPlayer: map[string][]entity.SkillAssessment{}}, newFakeAttendanceStorage(), &fakeReportSessionStorage{}, &fakeReportGameStorage{})

	_, err := svc.PlayerSkills(context.Background(), "ghost")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, gorm.ErrRecordNotFound, "storage errors are translated")
}
