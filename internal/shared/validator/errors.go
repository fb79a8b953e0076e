package validator

import (
	"errors"
	"fmt"
	"strings"

	sharedError "github.com/fussballmanager/go-api-server/internal/shared/error"
	"github.com/go-playground/validator/v10"
)

// ToErrorResponse converts gin binding/validator errors into a ValidationFailed response
// naming the first offending field.
func ToErrorResponse(err error) (*sharedError.ErrorResponse, bool) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil, false
	}

	if len(validationErrors) == 0 {
		return nil, false
	}

	resp := sharedError.ValidationFailed
	resp.Message = getErrorMessage(validationErrors[0])
	return &resp, true
}

func getErrorMessage(fe validator.FieldError) string {
	field := fieldName(fe)

	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s is required.", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address.", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s.", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s.", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s.", field, fe.Param())
	case "gtfield":
		return fmt.Sprintf("%s must be after %s.", field, toSnake(fe.Param()))
	case "role":
		return fmt.Sprintf("%s must be one of admin, coach, player, parent.", field)
	case "member_status":
		return fmt.Sprintf("%s must be active or inactive.", field)
	case "event_type":
		return fmt.Sprintf("%s must be one of training, match, event.", field)
	case "payment_status":
		return fmt.Sprintf("%s must be unpaid or paid.", field)
	case "uuid":
		return fmt.Sprintf("%s must be a UUID.", field)
	default:
		return fmt.Sprintf("%s is invalid.", field)
	}
}

// fieldName reports the JSON-facing field path, e.g. "roles[1]" for a dive failure
func fieldName(fe validator.FieldError) string {
	name := fe.Field()
	if name == "" {
		return "field"
	}
	return toSnake(name)
}

func toSnake(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && name[i-1] != '[' {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
