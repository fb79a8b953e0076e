package model

import "time"

// Event is a training, match or other club event
type Event struct {
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement"`

	ClubID    uint32     `gorm:"column:club_id;not null;index:idx_event_club"`
	Type      EventType  `gorm:"column:event_type;type:varchar(16);not null"`
	Title     string     `gorm:"column:title;type:varchar(200);not null"`
	StartTime time.Time  `gorm:"column:start_time;not null;index:idx_event_start"`
	EndTime   *time.Time `gorm:"column:end_time"`
	Location  *string    `gorm:"column:location;type:varchar(255)"`

	Club *Club `gorm:"foreignKey:ClubID;constraint:OnDelete:CASCADE"`

	BaseEntity
}

// TableName specifies the table name for Event
func (*Event) TableName() string {
	return "event"
}
