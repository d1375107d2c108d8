package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var ErrInvalidRequest = errors.New("invalid request")

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateRequest checks req against its struct tags and reports the first
// failing field in a client-friendly form wrapped in ErrInvalidRequest.
func validateRequest(v *validator.Validate, req any) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		switch fe.Tag() {
		case "min":
			return fmt.Errorf("%w: %s must be at least %s", ErrInvalidRequest, fe.Field(), fe.Param())
		case "max":
			return fmt.Errorf("%w: %s must be at most %s", ErrInvalidRequest, fe.Field(), fe.Param())
		default:
			return fmt.Errorf("%w: %s failed %s", ErrInvalidRequest, fe.Field(), fe.Tag())
		}
	}

	return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
}
