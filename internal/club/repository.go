package club

import (
	"context"
	"errors"

	"github.com/fussballmanager/go-api-server/internal/model"
	"gorm.io/gorm"
)

type ClubRepository struct{}

func NewClubRepository() *ClubRepository {
	return &ClubRepository{}
}

func (r *ClubRepository) Create(ctx context.Context, db *gorm.DB, club *model.Club, actorID *string) error {
	club.CreatedBy = actorID
	return db.WithContext(ctx).Create(club).Error
}

// FindByID returns nil without error when no club has id
func (r *ClubRepository) FindByID(ctx context.Context, db *gorm.DB, id uint32) (*model.Club, error) {
	var club model.Club
	err := db.WithContext(ctx).Where("id = ?", id).Take(&club).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &club, nil
}

// List orders clubs by name and counts all rows before paging
func (r *ClubRepository) List(ctx context.Context, db *gorm.DB, limit, offset int) ([]model.Club, int64, error) {
	var total int64
	if err := db.WithContext(ctx).Model(&model.Club{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	clubs := []model.Club{}
	err := db.WithContext(ctx).
		Order("name ASC").
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&clubs).Error
	if err != nil {
		return nil, 0, err
	}
	return clubs, total, nil
}
