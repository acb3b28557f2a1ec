package postgres

import "github.com/simplyrugby/club-server/internal/domain/entity"

// Migrations is a list of all gorm migrations for the database.
var Migrations = []interface{}{
	&entity.User{},
	&entity.Squad{},
	&entity.Coach{},
	&entity.Player{},
	&entity.JuniorPlayer{},
	&entity.NonPlayerMember{},
	&entity.MemberAssistant{},
	&entity.TrainingPlan{},
	&entity.TrainingSession{},
	&entity.PlayerAttendance{},
	&entity.Message{},
	&entity.Season{},
	&entity.Game{},
	&entity.Venue{},
	&entity.SkillAssessment{},
}
