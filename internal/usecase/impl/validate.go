package impl

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	domainerrors "courier/internal/domain/errors"
	"courier/internal/errors"
)

var (
	inputValidatorOnce sync.Once
	inputValidatorInst *validator.Validate
)

// inputValidator returns the shared validator instance. Field names in
// violation reports follow the json tag so they match what the caller sent.
func inputValidator() *validator.Validate {
	inputValidatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}

			return name
		})
		inputValidatorInst = v
	})

	return inputValidatorInst
}

// validateInput checks the struct's validate tags and reports every violated
// field at once instead of stopping at the first.
func validateInput(input any) error {
	err := inputValidator().Struct(input)
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

	// A nil or non-struct input (e.g. an empty request body that left the
	// bind target nil) never reaches field validation.
	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return domainerrors.NewValidationError("body")
	}

	return errors.Wrap(err, "failed to validate input")
}
