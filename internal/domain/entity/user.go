package entity

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Role string

const (
	RoleCoach             Role = "coach"
	RolePlayer            Role = "player"
	RoleJuniorPlayer      Role = "junior_player"
	RoleNonPlayerMember   Role = "non_player_member"
	RoleScheduleAssistant Role = "schedule_assistant"
	RoleMemberAssistant   Role = "member_assistant"
	RoleAdmin             Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCoach, RolePlayer, RoleJuniorPlayer, RoleNonPlayerMember,
		RoleScheduleAssistant, RoleMemberAssistant, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt
	Username     string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null" json:"-"`
	Name         string `gorm:"not null"`
	SRUNumber    string `gorm:"column:sru_number;uniqueIndex"`
	DOB          *time.Time
	Address      string
	TelNumber    string
	MobileNumber string
	Email        string
	Postcode     string
	Role         Role `gorm:"not null"`
}

// SetPassword hashes the clear-text password with bcrypt.
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether the clear-text password matches the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
