package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/simplyrugby/club-server/internal/domain/common/errorz"
	"github.com/simplyrugby/club-server/internal/domain/entity"
	"github.com/simplyrugby/club-server/internal/domain/utils/validator"
	"github.com/simplyrugby/club-server/pkg/logger/types"
	"gorm.io/gorm"
)

type sessionStorage interface {
	Set(ctx context.Context, token, userID string, expiration time.Duration) error
	Get(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}

type authUserStorage interface {
	Get(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) (*entity.User, error)
}

type resetMailer interface {
	SendPasswordReset(to, name, newPassword string) error
}

// AuthService issues opaque session tokens backed by redis. A token maps to
// a user id and dies either by logout or by TTL.
type AuthService struct {
	userStorage    authUserStorage
	sessionStorage sessionStorage
	mailer         resetMailer
	sessionTTL     time.Duration
	logger         *types.Logger
}

func NewAuthService(
	userStorage authUserStorage,
	sessionStorage sessionStorage,
	mailer resetMailer,
	sessionTTL time.Duration,
	logger *types.Logger,
) *AuthService {
	return &AuthService{
		userStorage:    userStorage,
		sessionStorage: sessionStorage,
		mailer:         mailer,
		sessionTTL:     sessionTTL,
		logger:         logger,
	}
}

// Login verifies the credentials and returns a fresh session token. Unknown
// username and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *entity.User, error) {
	user, err := s.userStorage.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, errorz.ErrUnauthorized
		}
		return "", nil, err
	}
	if !user.CheckPassword(password) {
		return "", nil, errorz.ErrUnauthorized
	}

	token := uuid.NewString()
	if err = s.sessionStorage.Set(ctx, token, user.ID, s.sessionTTL); err != nil {
		return "", nil, err
	}

	s.logger.Infof("user %s logged in", user.ID)
	return token, user, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessionStorage.Delete(ctx, token)
}

// UserFromToken resolves a session token to its user. An unknown or expired
// token is ErrUnauthorized, never an internal error.
func (s *AuthService) UserFromToken(ctx context.Context, token string) (*entity.User, error) {
	userID, err := s.sessionStorage.Get(ctx, token)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errorz.ErrUnauthorized
		}
		return nil, err
	}

	user, err := s.userStorage.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorz.ErrUnauthorized
		}
		return nil, err
	}
	return user, nil
}

// ResetPassword replaces the account password with a generated one and mails
// it to the address on record. The account must have an email address.
func (s *AuthService) ResetPassword(ctx context.Context, username string) error {
	user, err := s.userStorage.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorz.NotFoundf("user %s", username)
		}
		return err
	}
	if user.Email == "" {
		return errorz.Validationf("account %s has no email address on record", username)
	}

	newPassword := uuid.NewString()[:12]
	if err = user.SetPassword(newPassword); err != nil {
		return err
	}
	if _, err = s.userStorage.Update(ctx, user); err != nil {
		return err
	}
	if err = s.mailer.SendPasswordReset(user.Email, user.Name, newPassword); err != nil {
		return err
	}

	s.logger.Infof("password reset for user %s", user.ID)
	return nil
}

// ChangePassword rotates the password after checking the current one.
func (s *AuthService) ChangePassword(ctx context.Context, userID, current, next string) error {
	user, err := s.userStorage.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorz.NotFoundf("user %s", userID)
		}
		return err
	}
	if !user.CheckPassword(current) {
		return errorz.ErrUnauthorized
	}
	if !validator.Password(next) {
		return errorz.Validationf("password must be at least %d characters", validator.MinPasswordLength)
	}
	if err = user.SetPassword(next); err != nil {
		return err
	}
	_, err = s.userStorage.Update(ctx, user)
	return err
}
