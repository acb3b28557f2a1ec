package entity

import (
	"time"

	"gorm.io/gorm"
)

type Squad struct {
	ID        string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt
	Name      string `gorm:"not null;uniqueIndex"`
	TeamType  string
}
