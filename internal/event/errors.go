package event

import (
	"net/http"

	sharedError "github.com/fussballmanager/go-api-server/internal/shared/error"
)

const (
	eventNotFound = "EVENT_NOT_FOUND" // errInfo
)

var (
	ErrEventNotFound = sharedError.NewDomainError(eventNotFound)
)

func init() {
	sharedError.RegisterDomainErrorResponse(eventNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "EVENT-001",
		Message: "Event not found.",
	})
}
