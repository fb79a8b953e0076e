package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/fussballmanager/go-api-server/internal/model"
	"gorm.io/gorm"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) IsExist(ctx context.Context, db *gorm.DB, email string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&model.User{}).
		Where("email = ?", model.NormalizeEmail(email)).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts user; a concurrent signup with the same email surfaces as ErrEmailAlreadyTaken
func (r *UserRepository) Create(ctx context.Context, db *gorm.DB, user *model.User) error {
	if err := db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("create user: %w", ErrEmailAlreadyTaken)
		}
		return err
	}
	return nil
}

// FindByEmail returns nil without error when no user has email
func (r *UserRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.User, error) {
	var user model.User
	err := db.WithContext(ctx).Where("email = ?", model.NormalizeEmail(email)).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByID returns nil without error when no user has id
func (r *UserRepository) FindByID(ctx context.Context, db *gorm.DB, id uint32) (*model.User, error) {
	var user model.User
	err := db.WithContext(ctx).Where("id = ?", id).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateAccess replaces the roles, team and member link that scope what the user may do
func (r *UserRepository) UpdateAccess(ctx context.Context, db *gorm.DB, user *model.User, actorID *string) error {
	user.Touch(db.NowFunc(), actorID)
	return db.WithContext(ctx).
		Model(user).
		Select("roles", "team", "member_id", "updated_at", "updated_by").
		Updates(user).Error
}
