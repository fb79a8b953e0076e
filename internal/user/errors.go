package user

import (
	"net/http"

	sharedError "github.com/fussballmanager/go-api-server/internal/shared/error"
)

const (
	userNotFound      = "USER_NOT_FOUND"   // errInfo
	emailAlreadyTaken = "USER_EMAIL_TAKEN" // errInfo
)

var (
	ErrUserNotFound      = sharedError.NewDomainError(userNotFound)
	ErrEmailAlreadyTaken = sharedError.NewDomainError(emailAlreadyTaken)
)

func init() {
	sharedError.RegisterDomainErrorResponse(userNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "USER-001",
		Message: "User not found.",
	})

	sharedError.RegisterDomainErrorResponse(emailAlreadyTaken, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "USER-002",
		Message: "Email is already registered.",
	})
}
