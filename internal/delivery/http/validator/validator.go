// Package validator adapts go-playground/validator to echo's Validator hook.
package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	domainerrors "courier/internal/domain/errors"
)

// CustomValidator wraps a validator instance for echo.
type CustomValidator struct {
	validator *validator.Validate
}

// New creates the echo request validator. Field names in violation reports
// follow the json tag so they match what the client sent.
func New() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return &CustomValidator{validator: v}
}

// Validate checks the struct's validate tags and reports every violated field
// at once instead of stopping at the first.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validator.Struct(i)
	if err == nil {
		return nil
	}

	var violations validator.ValidationErrors
	if errors.As(err, &violations) {
		fields := make([]string, 0, len(violations))
		for _, violation := range violations {
			fields = append(fields, violation.Field())
		}

		return domainerrors.NewValidationError(fields...)
	}

	// A nil or non-struct value (e.g. an empty body that left the bind
	// target nil) never reaches field validation.
	return domainerrors.NewValidationError("body")
}
