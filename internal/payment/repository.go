package payment

import (
	"context"
	"errors"

	"github.com/fussballmanager/go-api-server/internal/model"
	"github.com/fussballmanager/go-api-server/internal/shared/date"
	"gorm.io/gorm"
)

type ListFilter struct {
	MemberID *string
	Status   *model.PaymentStatus
	Limit    int
	Offset   int
}

type PaymentRepository struct{}

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{}
}

func (r *PaymentRepository) Create(ctx context.Context, db *gorm.DB, payment *model.Payment, actorID *string) error {
	payment.CreatedBy = actorID
	return db.WithContext(ctx).Omit("Member").Create(payment).Error
}

func (r *PaymentRepository) FindByID(ctx context.Context, db *gorm.DB, id uint32) (*model.Payment, error) {
	var payment model.Payment
	err := db.WithContext(ctx).Where("id = ?", id).Take(&payment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// List orders by due_date ascending so the oldest open fees come first
func (r *PaymentRepository) List(ctx context.Context, db *gorm.DB, filter ListFilter) ([]model.Payment, int64, error) {
	query := db.WithContext(ctx).Model(&model.Payment{})
	if filter.MemberID != nil {
		query = query.Where("member_id = ?", *filter.MemberID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	payments := []model.Payment{}
	if total == 0 || int64(filter.Offset) >= total {
		return payments, total, nil
	}

	err := query.
		Order("due_date ASC").
		Order("id ASC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&payments).Error
	if err != nil {
		return nil, 0, err
	}
	return payments, total, nil
}

// MarkPaid settles an unpaid payment as of today.
// Returns false when the row is missing or already paid.
func (r *PaymentRepository) MarkPaid(ctx context.Context, db *gorm.DB, id uint32, actorID *string) (bool, error) {
	now := db.NowFunc()
	paidOn := date.Of(now).Time

	result := db.WithContext(ctx).
		Model(&model.Payment{}).
		Where("id = ? AND status = ?", id, string(model.PaymentStatusUnpaid)).
		Updates(map[string]any{
			"status":       string(model.PaymentStatusPaid),
			"payment_date": paidOn,
			"updated_at":   now,
			"updated_by":   actorID,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
