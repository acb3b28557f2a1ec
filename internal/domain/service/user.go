package service

import (
	"context"
	"errors"

	"github.com/simplyrugby/club-server/internal/domain/common/errorz"
	"github.com/simplyrugby/club-server/internal/domain/entity"
	"github.com/simplyrugby/club-server/internal/domain/utils/validator"
	"github.com/simplyrugby/club-server/pkg/logger/types"
	"gorm.io/gorm"
)

type userStorage interface {
	CreateWithCoach(ctx context.Context, user *entity.User, coach *entity.Coach) error
	CreateWithPlayer(ctx context.Context, user *entity.User, player *entity.Player) error
	CreateWithJuniorPlayer(ctx context.Context, user *entity.User, junior *entity.JuniorPlayer) error
	CreateWithNonPlayerMember(ctx context.Context, user *entity.User, member *entity.NonPlayerMember) error
	CreateWithMemberAssistant(ctx context.Context, user *entity.User, assistant *entity.MemberAssistant) error
	Get(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	GetWithPagination(ctx context.Context, offset, limit int, order string) ([]entity.User, error)
	Update(ctx context.Context, user *entity.User) (*entity.User, error)
	Count(ctx context.Context) (int64, error)
}

// UserService registers accounts. Every registration writes the user row and
// its role profile in one transaction; a half-registered account never
// exists.
type UserService struct {
	userStorage userStorage
	logger      *types.Logger
}

func NewUserService(userStorage userStorage, logger *types.Logger) *UserService {
	return &UserService{
		userStorage: userStorage,
		logger:      logger,
	}
}

func (s *UserService) RegisterCoach(ctx context.Context, user *entity.User, password string, coach *entity.Coach) (*entity.User, error) {
	if err := s.prepare(ctx, user, password, entity.RoleCoach); err != nil {
		return nil, err
	}
	if err := s.userStorage.CreateWithCoach(ctx, user, coach); err != nil {
		return nil, err
	}
	s.logger.Infof("registered coach %s (%s)", user.Username, user.ID)
	return user, nil
}

func (s *UserService) RegisterPlayer(ctx context.Context, user *entity.User, password string, player *entity.Player) (*entity.User, error) {
	if err := s.prepare(ctx, user, password, entity.RolePlayer); err != nil {
		return nil, err
	}
	if err := s.userStorage.CreateWithPlayer(ctx, user, player); err != nil {
		return nil, err
	}
	s.logger.Infof("registered player %s (%s)", user.Username, user.ID)
	return user, nil
}

// RegisterJuniorPlayer requires signed guardian consent and at least one
// guardian on record before the account is created.
func (s *UserService) RegisterJuniorPlayer(ctx context.Context, user *entity.User, password string, junior *entity.JuniorPlayer) (*entity.User, error) {
	if !junior.ConsentSigned {
		return nil, errorz.Validationf("guardian consent has not been signed")
	}
	if junior.Guardian1Name == "" {
		return nil, errorz.Validationf("at least one guardian is required")
	}
	if err := s.prepare(ctx, user, password, entity.RoleJuniorPlayer); err != nil {
		return nil, err
	}
	if err := s.userStorage.CreateWithJuniorPlayer(ctx, user, junior); err != nil {
		return nil, err
	}
	s.logger.Infof("registered junior player %s (%s)", user.Username, user.ID)
	return user, nil
}

func (s *UserService) RegisterNonPlayerMember(ctx context.Context, user *entity.User, password string, member *entity.NonPlayerMember) (*entity.User, error) {
	if err := s.prepare(ctx, user, password, entity.RoleNonPlayerMember); err != nil {
		return nil, err
	}
	if err := s.userStorage.CreateWithNonPlayerMember(ctx, user, member); err != nil {
		return nil, err
	}
	s.logger.Infof("registered non-player member %s (%s)", user.Username, user.ID)
	return user, nil
}

func (s *UserService) RegisterMemberAssistant(ctx context.Context, user *entity.User, password string, assistant *entity.MemberAssistant) (*entity.User, error) {
	if err := s.prepare(ctx, user, password, entity.RoleMemberAssistant); err != nil {
		return nil, err
	}
	if err := s.userStorage.CreateWithMemberAssistant(ctx, user, assistant); err != nil {
		return nil, err
	}
	s.logger.Infof("registered member assistant %s (%s)", user.Username, user.ID)
	return user, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*entity.User, error) {
	user, err := s.userStorage.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorz.NotFoundf("user %s", id)
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context, offset, limit int) ([]entity.User, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.userStorage.GetWithPagination(ctx, offset, limit, "created_at DESC")
}

func (s *UserService) Count(ctx context.Context) (int64, error) {
	return s.userStorage.Count(ctx)
}

// prepare runs the shared registration checks and fills the hashed password
// and role on the user.
func (s *UserService) prepare(ctx context.Context, user *entity.User, password string, role entity.Role) error {
	if user.Username == "" {
		return errorz.Validationf("username is required")
	}
	if user.Name == "" {
		return errorz.Validationf("name is required")
	}
	if !validator.Password(password) {
		return errorz.Validationf("password must be at least %d characters", validator.MinPasswordLength)
	}
	if user.Email != "" && !validator.Email(user.Email) {
		return errorz.Validationf("invalid email address %q", user.Email)
	}

	_, err := s.userStorage.GetByUsername(ctx, user.Username)
	if err == nil {
		return errorz.Validationf("username %q is already taken", user.Username)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	user.Role = role
	return user.SetPassword(password)
}
