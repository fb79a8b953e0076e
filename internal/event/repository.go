package event

import (
	"context"
	"errors"
	"time"

	"github.com/fussballmanager/go-api-server/internal/model"
	"gorm.io/gorm"
)

// ListFilter narrows List; nil fields do not filter
type ListFilter struct {
	ClubID *uint32
	Type   *model.EventType
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}

type EventRepository struct{}

func NewEventRepository() *EventRepository {
	return &EventRepository{}
}

func (r *EventRepository) Create(ctx context.Context, db *gorm.DB, event *model.Event, actorID *string) error {
	event.CreatedBy = actorID
	return db.WithContext(ctx).Omit("Club").Create(event).Error
}

func (r *EventRepository) FindByID(ctx context.Context, db *gorm.DB, id uint32) (*model.Event, error) {
	var event model.Event
	err := db.WithContext(ctx).Where("id = ?", id).Take(&event).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// List returns one page ordered by start_time ascending and the total matching count
func (r *EventRepository) List(ctx context.Context, db *gorm.DB, filter ListFilter) ([]model.Event, int64, error) {
	query := applyFilter(db.WithContext(ctx).Model(&model.Event{}), filter).Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	events := []model.Event{}
	if total == 0 || int64(filter.Offset) >= total {
		return events, total, nil
	}

	err := query.
		Order("start_time ASC").
		Order("id ASC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&events).Error
	if err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

func applyFilter(db *gorm.DB, filter ListFilter) *gorm.DB {
	if filter.ClubID != nil {
		db = db.Where("club_id = ?", *filter.ClubID)
	}
	if filter.Type != nil {
		db = db.Where("event_type = ?", string(*filter.Type))
	}
	if filter.From != nil {
		db = db.Where("start_time >= ?", filter.From.UTC())
	}
	if filter.To != nil {
		db = db.Where("start_time <= ?", filter.To.UTC())
	}
	return db
}
