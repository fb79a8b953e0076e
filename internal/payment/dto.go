package payment

import (
	"time"

	"github.com/fussballmanager/go-api-server/internal/model"
	"github.com/fussballmanager/go-api-server/internal/shared/date"
)

type CreatePaymentRequest struct {
	MemberID string     `json:"member_id" binding:"required,uuid"`
	Amount   float64    `json:"amount" binding:"required,gt=0"`
	DueDate  *date.Date `json:"due_date" binding:"required"`
}

func (r *CreatePaymentRequest) ToModel() *model.Payment {
	return &model.Payment{
		MemberID: r.MemberID,
		Amount:   r.Amount,
		Status:   model.PaymentStatusUnpaid,
		DueDate:  r.DueDate.Time,
	}
}

type ListPaymentsQuery struct {
	MemberID string `form:"member_id" binding:"omitempty,uuid"`
	Status   string `form:"status" binding:"omitempty,payment_status"`
	Limit    int    `form:"limit,default=50" binding:"min=1,max=100"`
	Offset   int    `form:"offset,default=0" binding:"min=0"`
}

func (q ListPaymentsQuery) ToFilter() ListFilter {
	filter := ListFilter{Limit: q.Limit, Offset: q.Offset}
	if q.MemberID != "" {
		filter.MemberID = &q.MemberID
	}
	if q.Status != "" {
		s := model.PaymentStatus(q.Status)
		filter.Status = &s
	}
	return filter
}

type PaymentResponse struct {
	ID          uint32     `json:"id"`
	MemberID    string     `json:"member_id"`
	Amount      float64    `json:"amount"`
	Status      string     `json:"status"`
	DueDate     date.Date  `json:"due_date"`
	PaymentDate *date.Date `json:"payment_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

func NewPaymentResponse(p *model.Payment) *PaymentResponse {
	return &PaymentResponse{
		ID:          p.ID,
		MemberID:    p.MemberID,
		Amount:      p.Amount,
		Status:      string(p.Status),
		DueDate:     date.Of(p.DueDate),
		PaymentDate: date.FromPtr(p.PaymentDate),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

type PaymentListResponse struct {
	Payments []*PaymentResponse `json:"payments"`
	Total    int64              `json:"total"`
	Limit    int                `json:"limit"`
	Offset   int                `json:"offset"`
}
