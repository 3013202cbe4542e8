// Package validation checks intents against the validate tags declared on
// internal/models records.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/nssportal/internal/common"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct validates s. Failures are returned wrapped in common.ErrValidation
// with one readable message per offending field.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return fmt.Errorf("%w: %s", common.ErrValidation, Format(verrs))
	}
	return fmt.Errorf("%w: %v", common.ErrValidation, err)
}

// Format renders validator errors as "field message; field message".
func Format(verrs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		field := e.Namespace()
		if i := strings.IndexByte(field, '.'); i >= 0 {
			field = field[i+1:]
		}
		msgs = append(msgs, message(field, e))
	}
	return strings.Join(msgs, "; ")
}

func message(field string, e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return field + " is required"
	case "oneof":
		return field + " must be one of: " + e.Param()
	case "datetime":
		return field + " must be a date in the form YYYY-MM-DD"
	default:
		return field + " is invalid"
	}
}

// Var validates a single value against tag, e.g. Var("status", s, "oneof=a b").
// name labels the value in the error message.
func Var(name string, v any, tag string) error {
	err := validate.Var(v, tag)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fmt.Errorf("%w: %s", common.ErrValidation, message(name, verrs[0]))
	}
	return fmt.Errorf("%w: %v", common.ErrValidation, err)
}
