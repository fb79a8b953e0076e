package payment

import (
	"net/http"

	sharedError "github.com/fussballmanager/go-api-server/internal/shared/error"
)

const (
	paymentNotFound    = "PAYMENT_NOT_FOUND"    // errInfo
	paymentAlreadyPaid = "PAYMENT_ALREADY_PAID" // errInfo
)

var (
	ErrPaymentNotFound    = sharedError.NewDomainError(paymentNotFound)
	ErrPaymentAlreadyPaid = sharedError.NewDomainError(paymentAlreadyPaid)
)

func init() {
	sharedError.RegisterDomainErrorResponse(paymentNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "PAYMENT-001",
		Message: "Payment not found.",
	})
	sharedError.RegisterDomainErrorResponse(paymentAlreadyPaid, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "PAYMENT-002",
		Message: "Payment has already been settled.",
	})
}
