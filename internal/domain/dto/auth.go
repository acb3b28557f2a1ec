package dto

import "github.com/simplyrugby/club-server/internal/domain/entity"

type Login struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}

type ResetPassword struct {
	Username string `json:"username" validate:"required"`
}

type ChangePassword struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

type UserProfile struct {
	ID        string      `json:"id"`
	Username  string      `json:"username"`
	Name      string      `json:"name"`
	SRUNumber string      `json:"sru_number,omitempty"`
	Email     string      `json:"email,omitempty"`
	Role      entity.Role `json:"role"`
}

type UserList struct {
	Users []UserProfile `json:"users"`
	Total int64         `json:"total"`
}

func NewUserProfile(user *entity.User) UserProfile {
	return UserProfile{
		ID:        user.ID,
		Username:  user.Username,
		Name:      user.Name,
		SRUNumber: user.SRUNumber,
		Email:     user.Email,
		Role:      user.Role,
	}
}
