package entity

import (
	"time"

	"gorm.io/gorm"
)

type Frequency string

const (
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiweekly Frequency = "biweekly"
	FrequencyMonthly  Frequency = "monthly"
)

func (f Frequency) Valid() bool {
	switch f {
	case FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly:
		return true
	}
	return false
}

type SessionStatus string

const (
	SessionScheduled SessionStatus = "scheduled"
	SessionCompleted SessionStatus = "completed"
	SessionCancelled SessionStatus = "cancelled"
)

func (s SessionStatus) Valid() bool {
	switch s {
	case SessionScheduled, SessionCompleted, SessionCancelled:
		return true
	}
	return false
}

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceExcused AttendanceStatus = "excused"
)

func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceExcused:
		return true
	}
	return false
}

// TrainingPlan is a recurring schedule template owned by one coach for one
// squad. Sessions are generated once at creation time; later date or
// frequency edits do not touch already generated sessions.
type TrainingPlan struct {
	ID          string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt
	CoachID     string `gorm:"not null;type:uuid;index"`
	SquadID     string `gorm:"not null;type:uuid;index"`
	Title       string `gorm:"not null"`
	Description string
	StartDate   time.Time `gorm:"not null"`
	EndDate     time.Time `gorm:"not null"`
	Frequency   Frequency `gorm:"not null"`

	Coach Coach `gorm:"foreignKey:CoachID"`
	Squad Squad `gorm:"foreignKey:SquadID"`
}

// Default session time window; editable per session afterwards.
const (
	DefaultSessionStart = "09:00"
	DefaultSessionEnd   = "11:00"
)

type TrainingSession struct {
	ID        string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt
	PlanID    string    `gorm:"not null;type:uuid;index"`
	Date      time.Time `gorm:"not null"`
	StartTime string    `gorm:"not null"`
	EndTime   string    `gorm:"not null"`
	Status    SessionStatus `gorm:"not null;default:scheduled"`

	Plan TrainingPlan `gorm:"foreignKey:PlanID"`
}

// PlayerAttendance records one player's attendance at one session. The
// (player, session) pair is unique; recording again updates in place.
type PlayerAttendance struct {
	ID        string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt time.Time
	UpdatedAt time.Time
	PlayerID  string           `gorm:"not null;type:uuid;uniqueIndex:idx_player_session"`
	SessionID string           `gorm:"not null;type:uuid;uniqueIndex:idx_player_session"`
	Status    AttendanceStatus `gorm:"not null"`
	Notes     string

	Player  Player          `gorm:"foreignKey:PlayerID"`
	Session TrainingSession `gorm:"foreignKey:SessionID"`
}
