package entity

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Coach is the role profile for users with RoleCoach. SquadID is the direct
// managing-coach link; a coach may additionally manage squads through
// training plans.
type Coach struct {
	ID        string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt
	UserID    string  `gorm:"not null;uniqueIndex;type:uuid"`
	SquadID   *string `gorm:"type:uuid"`

	User  User   `gorm:"foreignKey:UserID"`
	Squad *Squad `gorm:"foreignKey:SquadID"`
}

// Player is the adult player profile. A player belongs to at most one squad
// at a time; SquadID is nil for unassigned players.
type Player struct {
	ID                 string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          gorm.DeletedAt
	UserID             string  `gorm:"not null;uniqueIndex;type:uuid"`
	SquadID            *string `gorm:"type:uuid;index"`
	PreferredPositions pq.StringArray `gorm:"type:text[]"`
	HealthIssues       string
	NextOfKin          string
	NextOfKinRelation  string
	NextOfKinTel       string
	DoctorName         string
	DoctorTel          string
	DoctorAddress      string
	Age                int

	User  User   `gorm:"foreignKey:UserID"`
	Squad *Squad `gorm:"foreignKey:SquadID"`
}

type JuniorPlayer struct {
	ID        string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt
	UserID    string  `gorm:"not null;uniqueIndex;type:uuid"`
	SquadID   *string `gorm:"type:uuid;index"`

	Guardian1Name     string
	Guardian1Relation string
	Guardian1Tel      string
	Guardian1Address  string
	Guardian2Name     string
	Guardian2Relation string
	Guardian2Tel      string
	Guardian2Address  string

	DoctorName    string
	DoctorTel     string
	DoctorAddress string
	HealthIssues  string

	Position      string
	ConsentSigned bool
	Age           int

	User  User   `gorm:"foreignKey:UserID"`
	Squad *Squad `gorm:"foreignKey:SquadID"`
}

type NonPlayerMember struct {
	ID             string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt
	UserID         string `gorm:"not null;uniqueIndex;type:uuid"`
	MembershipType string

	User User `gorm:"foreignKey:UserID"`
}

// MemberAssistant is the staff profile allowed to send notifications.
type MemberAssistant struct {
	ID        string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt
	UserID    string `gorm:"not null;uniqueIndex;type:uuid"`

	User User `gorm:"foreignKey:UserID"`
}
