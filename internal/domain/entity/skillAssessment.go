package entity

import (
	"time"

	"gorm.io/gorm"
)

// CoreSkills is the fixed list of assessed skill categories.
var CoreSkills = []string{"Passing", "Tackling", "Kicking", "Running", "Teamwork"}

// DefaultSkillLevel is the neutral midpoint used when a player has no
// assessment for a category (levels run 1..5).
const DefaultSkillLevel = 3

type SkillAssessment struct {
	ID         string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt  time.Time `gorm:"index"`
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt
	PlayerID   string `gorm:"not null;type:uuid;index"`
	CoachID    string `gorm:"not null;type:uuid"`
	SkillType  string `gorm:"not null"`
	SkillLevel int    `gorm:"not null"`
	Notes      string

	Player Player `gorm:"foreignKey:PlayerID"`
	Coach  Coach  `gorm:"foreignKey:CoachID"`
}
