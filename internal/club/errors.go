package club

import (
	"net/http"

	sharedError "github.com/fussballmanager/go-api-server/internal/shared/error"
)

const (
	clubNotFound = "CLUB_NOT_FOUND" // errInfo
)

var (
	ErrClubNotFound = sharedError.NewDomainError(clubNotFound)
)

func init() {
	sharedError.RegisterDomainErrorResponse(clubNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "CLUB-001",
		Message: "Club not found.",
	})
}
