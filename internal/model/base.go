package model

import (
	"time"
)

// CreatedAt은 GORM이 자동 관리 (생성 시 1회)
// UpdatedAt은 첫 변경 전까지 NULL, 이후 Repository에서 명시적으로 설정
// CreatedBy, UpdatedBy는 Repository에서 명시적으로 설정
type BaseEntity struct {
	CreatedAt time.Time  `gorm:"column:created_at;not null"`
	UpdatedAt *time.Time `gorm:"column:updated_at;autoUpdateTime:false"`
	CreatedBy *string    `gorm:"column:created_by;type:varchar(64)"`
	UpdatedBy *string    `gorm:"column:updated_by;type:varchar(64)"`
}

// Touch records a mutation by actorID at now.
func (b *BaseEntity) Touch(now time.Time, actorID *string) {
	b.UpdatedAt = &now
	b.UpdatedBy = actorID
}
