package dto

import "github.com/simplyrugby/club-server/internal/domain/entity"

// PlayerSkills is one player's latest level per core skill plus the mean.
type PlayerSkills struct {
	PlayerID string         `json:"player_id"`
	Name     string         `json:"name"`
	Levels   map[string]int `json:"levels"`
	Average  float64        `json:"average"`
}

// SquadSkillReport aggregates skills across a squad: the per-player rows and
// the per-skill squad averages.
type SquadSkillReport struct {
	SquadID  string             `json:"squad_id"`
	Players  []PlayerSkills     `json:"players"`
	Averages map[string]float64 `json:"averages"`
}

// SessionReport is one completed session with its attendance tallies.
type SessionReport struct {
	Session        entity.TrainingSession `json:"session"`
	Present        int                    `json:"present"`
	Absent         int                    `json:"absent"`
	Excused        int                    `json:"excused"`
	AttendanceRate int                    `json:"attendance_rate"`
}

type AttendanceRateResponse struct {
	PlayerID string `json:"player_id"`
	Rate     int    `json:"rate"`
	Recorded int    `json:"recorded"`
}

// CalendarDay is one non-empty grid cell of the month view.
type CalendarDay struct {
	Day      int                      `json:"day"`
	Sessions []entity.TrainingSession `json:"sessions,omitempty"`
	Games    []entity.Game            `json:"games,omitempty"`
}

// MonthCalendar is the Monday-first month grid; Weeks cells hold day numbers
// with zero marking cells outside the month, Days carries the events.
type MonthCalendar struct {
	Year  int                 `json:"year"`
	Month int                 `json:"month"`
	Weeks [][7]int            `json:"weeks"`
	Days  map[int]CalendarDay `json:"days"`
}
