package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Member represents a club member (player, coach, parent, admin staff)
// ID는 UUID 문자열, 생성 시 BeforeCreate에서 발급
type Member struct {
	ID string `gorm:"column:id;type:varchar(36);primaryKey"`

	// Core fields
	FirstName string       `gorm:"column:first_name;type:varchar(100);not null"`
	LastName  string       `gorm:"column:last_name;type:varchar(100);not null"`
	Email     *string      `gorm:"column:email;type:varchar(255)"`
	EmailKey  *string      `gorm:"column:email_key;type:varchar(255);uniqueIndex:idx_member_email_key"` // lower(email), 대소문자 무시 unique
	Birthdate *time.Time   `gorm:"column:birthdate;type:date"`
	Roles     RoleSet      `gorm:"column:roles;type:varchar(64)"`
	Team      *int         `gorm:"column:team;index:idx_member_team"`
	Status    MemberStatus `gorm:"column:status;type:varchar(16);not null;default:active;index:idx_member_status"`
	Notes     *string      `gorm:"column:notes;type:varchar(2000)"`

	BaseEntity
}

// TableName specifies the table name for Member
func (*Member) TableName() string {
	return "member"
}

// BeforeCreate assigns the identifier and defaults that must hold for every new row
func (m *Member) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.Status == "" {
		m.Status = MemberStatusActive
	}
	m.EmailKey = EmailKey(m.Email)
	return nil
}

// SetEmail updates the address and its case-insensitive lookup key together.
func (m *Member) SetEmail(email *string) {
	m.Email = email
	m.EmailKey = EmailKey(email)
}

// EmailKey normalizes an optional address for case-insensitive comparison.
func EmailKey(email *string) *string {
	if email == nil {
		return nil
	}
	key := NormalizeEmail(*email)
	if key == "" {
		return nil
	}
	return &key
}

// NormalizeEmail lower-cases and trims an address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
