package dto

type AssignPlayer struct {
	PlayerID string `json:"player_id" validate:"required"`
}

type RemovePlayerResponse struct {
	Removed bool `json:"removed"`
}

type CreateSquad struct {
	Name     string `json:"name" validate:"required"`
	TeamType string `json:"team_type"`
}
