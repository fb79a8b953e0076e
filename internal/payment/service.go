package payment

import (
	"context"
	"fmt"

	"github.com/fussballmanager/go-api-server/internal/member"
	"github.com/fussballmanager/go-api-server/internal/model"
	sharedContext "github.com/fussballmanager/go-api-server/internal/shared/context"
	"github.com/fussballmanager/go-api-server/internal/shared/database"
	"github.com/fussballmanager/go-api-server/internal/shared/logger"
	"gorm.io/gorm"
)

type PaymentService struct {
	db                *gorm.DB
	paymentRepository *PaymentRepository
	memberRepository  *member.MemberRepository
}

func NewPaymentService(db *gorm.DB, paymentRepository *PaymentRepository, memberRepository *member.MemberRepository) *PaymentService {
	return &PaymentService{
		db:                db,
		paymentRepository: paymentRepository,
		memberRepository:  memberRepository,
	}
}

func (s *PaymentService) CreatePayment(ctx context.Context, request *CreatePaymentRequest, caller sharedContext.Caller) (*PaymentResponse, error) {
	return database.InTransaction(ctx, s.db, func(tx *gorm.DB) (*PaymentResponse, error) {
		owner, err := s.memberRepository.FindByID(ctx, tx, request.MemberID)
		if err != nil {
			return nil, fmt.Errorf("회원 조회 실패: %w", err)
		}
		if owner == nil {
			return nil, fmt.Errorf("memberID=%s: %w", request.MemberID, member.ErrMemberNotFound)
		}

		payment := request.ToModel()
		if err := s.paymentRepository.Create(ctx, tx, payment, caller.ActorID()); err != nil {
			return nil, fmt.Errorf("회비 생성 실패: %w", err)
		}

		logger.FromContext(ctx).Info("회비 생성",
			"payment_id", payment.ID,
			"member_id", payment.MemberID,
			"user_id", caller.UserID,
		)
		return NewPaymentResponse(payment), nil
	})
}

func (s *PaymentService) ListPayments(ctx context.Context, filter ListFilter) (*PaymentListResponse, error) {
	return database.InTransaction(ctx, s.db, func(tx *gorm.DB) (*PaymentListResponse, error) {
		payments, total, err := s.paymentRepository.List(ctx, tx, filter)
		if err != nil {
			return nil, fmt.Errorf("회비 목록 조회 실패: %w", err)
		}

		responses := make([]*PaymentResponse, 0, len(payments))
		for i := range payments {
			responses = append(responses, NewPaymentResponse(&payments[i]))
		}

		return &PaymentListResponse{Payments: responses, Total: total, Limit: filter.Limit, Offset: filter.Offset}, nil
	})
}

func (s *PaymentService) MarkPaid(ctx context.Context, id uint32, caller sharedContext.Caller) (*PaymentResponse, error) {
	return database.InTransaction(ctx, s.db, func(tx *gorm.DB) (*PaymentResponse, error) {
		current, err := s.paymentRepository.FindByID(ctx, tx, id)
		if err != nil {
			return nil, fmt.Errorf("회비 조회 실패: %w", err)
		}
		if current == nil {
			return nil, fmt.Errorf("paymentID=%d: %w", id, ErrPaymentNotFound)
		}
		if current.Status == model.PaymentStatusPaid {
			return nil, fmt.Errorf("paymentID=%d: %w", id, ErrPaymentAlreadyPaid)
		}

		ok, err := s.paymentRepository.MarkPaid(ctx, tx, id, caller.ActorID())
		if err != nil {
			return nil, fmt.Errorf("회비 납부 처리 실패: %w", err)
		}
		if !ok {
			return nil, fmt.Errorf("paymentID=%d: %w", id, ErrPaymentAlreadyPaid)
		}

		paid, err := s.paymentRepository.FindByID(ctx, tx, id)
		if err != nil {
			return nil, fmt.Errorf("회비 조회 실패: %w", err)
		}

		logger.FromContext(ctx).Info("회비 납부 처리", "payment_id", id, "user_id", caller.UserID)
		return NewPaymentResponse(paid), nil
	})
}
