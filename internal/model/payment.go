package model

import "time"

// Payment is a membership fee owed by a member
type Payment struct {
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement"`

	MemberID    string        `gorm:"column:member_id;type:varchar(36);not null;index:idx_payment_member"`
	Amount      float64       `gorm:"column:amount;not null"`
	Status      PaymentStatus `gorm:"column:status;type:varchar(16);not null;default:unpaid"`
	DueDate     time.Time     `gorm:"column:due_date;type:date;not null"`
	PaymentDate *time.Time    `gorm:"column:payment_date;type:date"`

	Member *Member `gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE"`

	BaseEntity
}

// TableName specifies the table name for Payment
func (*Payment) TableName() string {
	return "payment"
}
