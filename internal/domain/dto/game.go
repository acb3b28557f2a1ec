package dto

type CreateGame struct {
	SquadID     *string `json:"squad_id"`
	Opponent    string  `json:"opponent" validate:"required"`
	MatchDate   string  `json:"match_date" validate:"required"`
	KickoffTime string  `json:"kickoff_time"`
	Location    string  `json:"location" validate:"required,oneof=home away"`
}

type RecordGameResult struct {
	ScoreFor      int    `json:"score_for" validate:"min=0"`
	ScoreAgainst  int    `json:"score_against" validate:"min=0"`
	CommentsHalf1 string `json:"comments_half1"`
	CommentsHalf2 string `json:"comments_half2"`
}

type CreateSeason struct {
	Name      string `json:"name" validate:"required"`
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
}

type CreateVenue struct {
	Name        string `json:"name" validate:"required"`
	Address     string `json:"address"`
	Capacity    int    `json:"capacity"`
	Facilities  string `json:"facilities"`
	IsHome      bool   `json:"is_home"`
	ContactInfo string `json:"contact_info"`
	Notes       string `json:"notes"`
}

type RecordSkillAssessment struct {
	PlayerID   string `json:"player_id" validate:"required"`
	SkillType  string `json:"skill_type" validate:"required"`
	SkillLevel int    `json:"skill_level" validate:"required,min=1,max=5"`
	Notes      string `json:"notes"`
}
