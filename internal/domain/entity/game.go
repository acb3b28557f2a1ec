package entity

import (
	"time"

	"gorm.io/gorm"
)

type GameLocation string

const (
	GameHome GameLocation = "home"
	GameAway GameLocation = "away"
)

func (l GameLocation) Valid() bool {
	return l == GameHome || l == GameAway
}

type GameResult string

const (
	GameWon  GameResult = "won"
	GameLost GameResult = "lost"
	GameDrew GameResult = "drew"
)

func (r GameResult) Valid() bool {
	switch r {
	case GameWon, GameLost, GameDrew:
		return true
	}
	return false
}

type Season struct {
	ID        string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt
	Name      string    `gorm:"not null"`
	StartDate time.Time `gorm:"not null"`
	EndDate   time.Time `gorm:"not null"`
	Status    string    `gorm:"not null;default:not_started"`
}

type Game struct {
	ID            string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt
	SeasonID      string  `gorm:"not null;type:uuid;index"`
	SquadID       *string `gorm:"type:uuid;index"`
	Opponent      string  `gorm:"not null"`
	MatchDate     time.Time `gorm:"not null;index"`
	KickoffTime   string
	Location      GameLocation `gorm:"not null"`
	ScoreFor      *int
	ScoreAgainst  *int
	Result        *GameResult
	CommentsHalf1 string
	CommentsHalf2 string

	Season Season `gorm:"foreignKey:SeasonID"`
	Squad  *Squad `gorm:"foreignKey:SquadID"`
}

type Venue struct {
	ID          string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt
	Name        string `gorm:"not null"`
	Address     string
	Capacity    int
	Facilities  string
	IsHome      bool
	ContactInfo string
	Notes       string
}
