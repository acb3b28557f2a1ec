package calendar

import (
	"strings"
	"testing"
	"time"

	"github.com/simplyrugby/club-server/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthGridJanuary2024(t *testing.T) {
	// January 2024 starts on a Monday and has exactly 5 full rows
	weeks := MonthGrid(2024, time.January)

	require.Len(t, weeks, 5)
	assert.Equal(t, [7]int{1, 2, 3, 4, 5, 6, 7}, weeks[0])
	assert.Equal(t, [7]int{29, 30, 31, 0, 0, 0, 0}, weeks[4])
}

func TestMonthGridMay2024(t *testing.T) {
	// May 2024 starts on a Wednesday
	weeks := MonthGrid(2024, time.May)

	require.Len(t, weeks, 5)
	assert.Equal(t, [7]int{0, 0, 1, 2, 3, 4, 5}, weeks[0])
	assert.Equal(t, [7]int{27, 28, 29, 30, 31, 0, 0}, weeks[4])
}

func TestMonthGridFebruaryNonLeap(t *testing.T) {
	// February 2021: 28 days starting on a Monday, a perfect 4-row grid
	weeks := MonthGrid(2021, time.February)

	require.Len(t, weeks, 4)
	assert.Equal(t, [7]int{1, 2, 3, 4, 5, 6, 7}, weeks[0])
	assert.Equal(t, [7]int{22, 23, 24, 25, 26, 27, 28}, weeks[3])
}

func TestMonthBounds(t *testing.T) {
	first, last := MonthBounds(2024, time.February)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), first)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), last)
}

func TestExportSessionsToICS(t *testing.T) {
	plan := &entity.TrainingPlan{
		ID:          "plan-1",
		Title:       "Preseason",
		Description: "fitness block",
	}
	sessions := []entity.TrainingSession{
		{
			ID:        "session-1",
			PlanID:    "plan-1",
			Date:      time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
			StartTime: "09:00",
			EndTime:   "11:00",
			Status:    entity.SessionScheduled,
		},
		{
			ID:        "session-2",
			PlanID:    "plan-1",
			Date:      time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			StartTime: "09:00",
			EndTime:   "11:00",
			Status:    entity.SessionCancelled,
		},
	}

	data, err := ExportSessionsToICS(plan, sessions)
	require.NoError(t, err)

	ics := string(data)
	assert.Contains(t, ics, "BEGIN:VCALENDAR")
	assert.Contains(t, ics, "SUMMARY:Preseason")
	assert.Contains(t, ics, "session-1@simplyrugby")
	assert.NotContains(t, ics, "session-2@simplyrugby", "cancelled sessions are not exported")
	assert.Equal(t, 1, strings.Count(ics, "BEGIN:VEVENT"))
}

func TestSessionWindowFallsBackOnBadTimes(t *testing.T) {
	start, end := sessionWindow(entity.TrainingSession{
		Date:      time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
		StartTime: "morning",
		EndTime:   "noon",
	})
	assert.Equal(t, time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, 2*time.Hour, end.Sub(start))
}
