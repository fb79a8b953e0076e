package validator

import (
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"sync"

	"github.com/fussballmanager/go-api-server/internal/model"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var registerOnce sync.Once

// GetValidator returns the validator instance from Gin binding
func GetValidator() (*validator.Validate, error) {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil, fmt.Errorf("validator 엔진을 가져올 수 없습니다")
	}
	return v, nil
}

// RegisterAll registers the enum validators used by request DTOs. Safe to call more than once.
func RegisterAll() error {
	var err error
	registerOnce.Do(func() {
		err = register()
	})
	return err
}

func register() error {
	v, err := GetValidator()
	if err != nil {
		return fmt.Errorf("validator 엔진 가져오기 실패: %w", err)
	}

	v.RegisterTagNameFunc(jsonFieldName)

	validators := map[string]validator.Func{
		"role":           validateRole,
		"member_status":  validateMemberStatus,
		"event_type":     validateEventType,
		"payment_status": validatePaymentStatus,
		"notblank":       validators.NotBlank,
	}

	for tag, fn := range validators {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("%s validator 등록 실패: %w", tag, err)
		}
	}

	slog.Info("공통 Validator 등록 완료", "validators", len(validators))
	return nil
}

func validateRole(fl validator.FieldLevel) bool {
	return model.Role(fl.Field().String()).IsValid()
}

func validateMemberStatus(fl validator.FieldLevel) bool {
	return model.MemberStatus(fl.Field().String()).IsValid()
}

func validateEventType(fl validator.FieldLevel) bool {
	return model.EventType(fl.Field().String()).IsValid()
}

func validatePaymentStatus(fl validator.FieldLevel) bool {
	return model.PaymentStatus(fl.Field().String()).IsValid()
}

// jsonFieldName reports fields by their json, form or uri name so messages match the wire format
func jsonFieldName(field reflect.StructField) string {
	for _, key := range []string{"json", "form", "uri"} {
		name, _, _ := strings.Cut(field.Tag.Get(key), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return field.Name
}
