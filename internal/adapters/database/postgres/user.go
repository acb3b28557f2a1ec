package postgres

import (
	"context"

	"github.com/simplyrugby/club-server/internal/domain/entity"
	"gorm.io/gorm"
)

type UserStorage struct {
	db *gorm.DB
}

func NewUserStorage(db *gorm.DB) *UserStorage {
	return &UserStorage{
		db: db,
	}
}

// Create is a function that creates a new user in the database.
func (s *UserStorage) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	err := s.db.WithContext(ctx).Create(&user).Error
	return user, err
}

// CreateWithCoach creates a user and its coach profile in one transaction.
func (s *UserStorage) CreateWithCoach(ctx context.Context, user *entity.User, coach *entity.Coach) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		coach.UserID = user.ID
		return tx.Create(coach).Error
	})
}

// CreateWithPlayer creates a user and its player profile in one transaction.
func (s *UserStorage) CreateWithPlayer(ctx context.Context, user *entity.User, player *entity.Player) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		player.UserID = user.ID
		return tx.Create(player).Error
	})
}

// CreateWithJuniorPlayer creates a user and its junior player profile in one transaction.
func (s *UserStorage) CreateWithJuniorPlayer(ctx context.Context, user *entity.User, junior *entity.JuniorPlayer) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		junior.UserID = user.ID
		return tx.Create(junior).Error
	})
}

// CreateWithNonPlayerMember creates a user and its non-player member profile in one transaction.
func (s *UserStorage) CreateWithNonPlayerMember(ctx context.Context, user *entity.User, member *entity.NonPlayerMember) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		member.UserID = user.ID
		return tx.Create(member).Error
	})
}

// CreateWithMemberAssistant creates a user and its member assistant profile in one transaction.
func (s *UserStorage) CreateWithMemberAssistant(ctx context.Context, user *entity.User, assistant *entity.MemberAssistant) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		assistant.UserID = user.ID
		return tx.Create(assistant).Error
	})
}

// Get is a function that gets a user from the database by id.
func (s *UserStorage) Get(ctx context.Context, id string) (*entity.User, error) {
	var user entity.User
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	return &user, err
}

// GetByUsername is a function that gets a user from the database by username.
func (s *UserStorage) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	var user entity.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	return &user, err
}

// GetMany is a function that gets users from the database by ids.
func (s *UserStorage) GetMany(ctx context.Context, ids []string) ([]entity.User, error) {
	var users []entity.User
	err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error
	return users, err
}

// Update is a function that updates a user in the database.
func (s *UserStorage) Update(ctx context.Context, user *entity.User) (*entity.User, error) {
	err := s.db.WithContext(ctx).Save(&user).Error
	return user, err
}

// Count is a function that gets the count of users from the database.
func (s *UserStorage) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&entity.User{}).Count(&count).Error
	return count, err
}

// GetWithPagination is a function that gets a list of users from the database with pagination.
func (s *UserStorage) GetWithPagination(ctx context.Context, offset, limit int, order string) ([]entity.User, error) {
	var users []entity.User
	err := s.db.WithContext(ctx).Order(order).Offset(offset).Limit(limit).Find(&users).Error
	return users, err
}
