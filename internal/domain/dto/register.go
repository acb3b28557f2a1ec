package dto

// RegisterBase carries the account fields shared by every registration kind.
type RegisterBase struct {
	Username     string `json:"username" validate:"required"`
	Password     string `json:"password" validate:"required,min=8"`
	Name         string `json:"name" validate:"required"`
	SRUNumber    string `json:"sru_number"`
	DOB          string `json:"dob"`
	Address      string `json:"address"`
	TelNumber    string `json:"tel_number"`
	MobileNumber string `json:"mobile_number"`
	Email        string `json:"email" validate:"omitempty,email"`
	Postcode     string `json:"postcode"`
}

type RegisterCoach struct {
	RegisterBase
	SquadID *string `json:"squad_id"`
}

type RegisterPlayer struct {
	RegisterBase
	PreferredPositions []string `json:"preferred_positions"`
	HealthIssues       string   `json:"health_issues"`
	NextOfKin          string   `json:"next_of_kin"`
	NextOfKinRelation  string   `json:"next_of_kin_relation"`
	NextOfKinTel       string   `json:"next_of_kin_tel"`
	DoctorName         string   `json:"doctor_name"`
	DoctorTel          string   `json:"doctor_tel"`
	DoctorAddress      string   `json:"doctor_address"`
	Age                int      `json:"age"`
}

type RegisterJuniorPlayer struct {
	RegisterBase
	Guardian1Name     string `json:"guardian1_name" validate:"required"`
	Guardian1Relation string `json:"guardian1_relation"`
	Guardian1Tel      string `json:"guardian1_tel"`
	Guardian1Address  string `json:"guardian1_address"`
	Guardian2Name     string `json:"guardian2_name"`
	Guardian2Relation string `json:"guardian2_relation"`
	Guardian2Tel      string `json:"guardian2_tel"`
	Guardian2Address  string `json:"guardian2_address"`
	DoctorName        string `json:"doctor_name"`
	DoctorTel         string `json:"doctor_tel"`
	DoctorAddress     string `json:"doctor_address"`
	HealthIssues      string `json:"health_issues"`
	Position          string `json:"position"`
	ConsentSigned     bool   `json:"consent_signed"`
	Age               int    `json:"age"`
}

type RegisterNonPlayerMember struct {
	RegisterBase
	MembershipType string `json:"membership_type"`
}

type RegisterMemberAssistant struct {
	RegisterBase
}
