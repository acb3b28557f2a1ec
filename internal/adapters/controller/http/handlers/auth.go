package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/lib/pq"
	"github.com/simplyrugby/club-server/internal/adapters/controller/http/middlewares"
	"github.com/simplyrugby/club-server/internal/domain/common/errorz"
	"github.com/simplyrugby/club-server/internal/domain/dto"
	"github.com/simplyrugby/club-server/internal/domain/entity"
	"github.com/simplyrugby/club-server/internal/domain/service"
)

type AuthHandler struct {
	authService *service.AuthService
	userService *service.UserService
}

func NewAuthHandler(authService *service.AuthService, userService *service.UserService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		userService: userService,
	}
}

func (h *AuthHandler) Login(c echo.Context) error {
	var payload dto.Login
	if err := bind(c, &payload); err != nil {
		return err
	}

	token, user, err := h.authService.Login(c.Request().Context(), payload.Username, payload.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.LoginResponse{
		Token: token,
		User:  dto.NewUserProfile(user),
	})
}

func (h *AuthHandler) Logout(c echo.Context) error {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return errorz.ErrUnauthorized
	}
	if err := h.authService.Logout(c.Request().Context(), token); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ResetPassword always answers 200 so usernames cannot be probed.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var payload dto.ResetPassword
	if err := bind(c, &payload); err != nil {
		return err
	}

	if err := h.authService.ResetPassword(c.Request().Context(), payload.Username); err != nil {
		c.Logger().Errorf("password reset for %q: %v", payload.Username, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "if the account exists, a new password has been emailed to its address on record",
	})
}

func (h *AuthHandler) ChangePassword(c echo.Context) error {
	var payload dto.ChangePassword
	if err := bind(c, &payload); err != nil {
		return err
	}

	user := middlewares.ContextUser(c)
	if user == nil {
		return errorz.ErrUnauthorized
	}
	if err := h.authService.ChangePassword(c.Request().Context(), user.ID, payload.CurrentPassword, payload.NewPassword); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AuthHandler) Me(c echo.Context) error {
	user := middlewares.ContextUser(c)
	if user == nil {
		return errorz.ErrUnauthorized
	}
	return c.JSON(http.StatusOK, dto.NewUserProfile(user))
}

// ListUsers pages through every registered account, newest first.
func (h *AuthHandler) ListUsers(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	users, err := h.userService.List(c.Request().Context(), offset, limit)
	if err != nil {
		return err
	}
	total, err := h.userService.Count(c.Request().Context())
	if err != nil {
		return err
	}

	profiles := make([]dto.UserProfile, 0, len(users))
	for i := range users {
		profiles = append(profiles, dto.NewUserProfile(&users[i]))
	}
	return c.JSON(http.StatusOK, dto.UserList{Users: profiles, Total: total})
}

func (h *AuthHandler) RegisterCoach(c echo.Context) error {
	var payload dto.RegisterCoach
	if err := bind(c, &payload); err != nil {
		return err
	}

	user, err := userFromBase(payload.RegisterBase)
	if err != nil {
		return err
	}
	registered, err := h.userService.RegisterCoach(c.Request().Context(), user, payload.Password, &entity.Coach{
		SquadID: payload.SquadID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dto.NewUserProfile(registered))
}

func (h *AuthHandler) RegisterPlayer(c echo.Context) error {
	var payload dto.RegisterPlayer
	if err := bind(c, &payload); err != nil {
		return err
	}

	user, err := userFromBase(payload.RegisterBase)
	if err != nil {
		return err
	}
	registered, err := h.userService.RegisterPlayer(c.Request().Context(), user, payload.Password, &entity.Player{
		PreferredPositions: pq.StringArray(payload.PreferredPositions),
		HealthIssues:       payload.HealthIssues,
		NextOfKin:          payload.NextOfKin,
		NextOfKinRelation:  payload.NextOfKinRelation,
		NextOfKinTel:       payload.NextOfKinTel,
		DoctorName:         payload.DoctorName,
		DoctorTel:          payload.DoctorTel,
		DoctorAddress:      payload.DoctorAddress,
		Age:                payload.Age,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dto.NewUserProfile(registered))
}

func (h *AuthHandler) RegisterJuniorPlayer(c echo.Context) error {
	var payload dto.RegisterJuniorPlayer
	if err := bind(c, &payload); err != nil {
		return err
	}

	user, err := userFromBase(payload.RegisterBase)
	if err != nil {
		return err
	}
	registered, err := h.userService.RegisterJuniorPlayer(c.Request().Context(), user, payload.Password, &entity.JuniorPlayer{
		Guardian1Name:     payload.Guardian1Name,
		Guardian1Relation: payload.Guardian1Relation,
		Guardian1Tel:      payload.Guardian1Tel,
		Guardian1Address:  payload.Guardian1Address,
		Guardian2Name:     payload.Guardian2Name,
		Guardian2Relation: payload.Guardian2Relation,
		Guardian2Tel:      payload.Guardian2Tel,
		Guardian2Address:  payload.Guardian2Address,
		DoctorName:        payload.DoctorName,
		DoctorTel:         payload.DoctorTel,
		DoctorAddress:     payload.DoctorAddress,
		HealthIssues:      payload.HealthIssues,
		Position:          payload.Position,
		ConsentSigned:     payload.ConsentSigned,
		Age:               payload.Age,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dto.NewUserProfile(registered))
}

func (h *AuthHandler) RegisterNonPlayerMember(c echo.Context) error {
	var payload dto.RegisterNonPlayerMember
	if err := bind(c, &payload); err != nil {
		return err
	}

	user, err := userFromBase(payload.RegisterBase)
	if err != nil {
		return err
	}
	registered, err := h.userService.RegisterNonPlayerMember(c.Request().Context(), user, payload.Password, &entity.NonPlayerMember{
		MembershipType: payload.MembershipType,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dto.NewUserProfile(registered))
}

func (h *AuthHandler) RegisterMemberAssistant(c echo.Context) error {
	var payload dto.RegisterMemberAssistant
	if err := bind(c, &payload); err != nil {
		return err
	}

	user, err := userFromBase(payload.RegisterBase)
	if err != nil {
		return err
	}
	registered, err := h.userService.RegisterMemberAssistant(c.Request().Context(), user, payload.Password, &entity.MemberAssistant{})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dto.NewUserProfile(registered))
}

func userFromBase(base dto.RegisterBase) (*entity.User, error) {
	user := &entity.User{
		Username:     base.Username,
		Name:         base.Name,
		SRUNumber:    base.SRUNumber,
		Address:      base.Address,
		TelNumber:    base.TelNumber,
		MobileNumber: base.MobileNumber,
		Email:        base.Email,
		Postcode:     base.Postcode,
	}
	if base.DOB != "" {
		dob, err := parseDate(base.DOB, "dob")
		if err != nil {
			return nil, err
		}
		user.DOB = &dob
	}
	return user, nil
}
