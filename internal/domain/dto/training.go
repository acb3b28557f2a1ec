package dto

import "github.com/simplyrugby/club-server/internal/domain/entity"

type CreateTrainingPlan struct {
	SquadID     string `json:"squad_id" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	StartDate   string `json:"start_date" validate:"required"`
	EndDate     string `json:"end_date" validate:"required"`
	Frequency   string `json:"frequency" validate:"required,oneof=weekly biweekly monthly"`
}

type UpdateTrainingPlan struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	StartDate   string `json:"start_date" validate:"required"`
	EndDate     string `json:"end_date" validate:"required"`
	Frequency   string `json:"frequency" validate:"required,oneof=weekly biweekly monthly"`
}

type RecordAttendance struct {
	PlayerID string `json:"player_id" validate:"required"`
	Status   string `json:"status" validate:"required,oneof=present absent excused"`
	Notes    string `json:"notes"`
}

type SetSessionStatus struct {
	Status string `json:"status" validate:"required,oneof=scheduled completed cancelled"`
}

type TrainingPlanResponse struct {
	Plan     entity.TrainingPlan      `json:"plan"`
	Sessions []entity.TrainingSession `json:"sessions,omitempty"`
}
