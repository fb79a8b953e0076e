package member

import (
	"net/http"

	sharedError "github.com/fussballmanager/go-api-server/internal/shared/error"
)

const (
	memberNotFound     = "MEMBER_NOT_FOUND"     // errInfo
	emailAlreadyExists = "MEMBER_EMAIL_EXISTS"  // errInfo
	insufficientRole   = "MEMBER_ROLE_REQUIRED" // errInfo
	memberAccessDenied = "MEMBER_ACCESS_DENIED" // errInfo
	statusNotEditable  = "MEMBER_STATUS_LOCKED" // errInfo
)

var (
	ErrMemberNotFound     = sharedError.NewDomainError(memberNotFound)
	ErrEmailAlreadyExists = sharedError.NewDomainError(emailAlreadyExists)
	ErrInsufficientRole   = sharedError.NewDomainError(insufficientRole)
	ErrMemberAccessDenied = sharedError.NewDomainError(memberAccessDenied)
	ErrStatusNotEditable  = sharedError.NewDomainError(statusNotEditable)
)

func init() {
	sharedError.RegisterDomainErrorResponse(memberNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "MEMBER-001",
		Message: "Member not found.",
	})

	sharedError.RegisterDomainErrorResponse(emailAlreadyExists, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "MEMBER-002",
		Message: "Email already exists.",
	})

	sharedError.RegisterDomainErrorResponse(insufficientRole, sharedError.ErrorResponse{
		Status:  http.StatusForbidden,
		Code:    "MEMBER-003",
		Message: "Your role does not allow this operation.",
	})

	sharedError.RegisterDomainErrorResponse(memberAccessDenied, sharedError.ErrorResponse{
		Status:  http.StatusForbidden,
		Code:    "MEMBER-004",
		Message: "You are not allowed to act on this member.",
	})

	sharedError.RegisterDomainErrorResponse(statusNotEditable, sharedError.ErrorResponse{
		Status:  http.StatusUnprocessableEntity,
		Code:    "MEMBER-005",
		Message: "Status can only be changed by deleting or restoring the member.",
	})
}
