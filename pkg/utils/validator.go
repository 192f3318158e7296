package utils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"taskdesk/pkg/apperr"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Violation paths use the json field name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// ValidateStruct evaluates the validate tags on s and returns every
// violation found. A failing input yields the full list, never just the
// first field in error.
func ValidateStruct(s any) []apperr.Violation {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return []apperr.Violation{{Path: "", Message: err.Error()}}
	}

	violations := make([]apperr.Violation, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		violations = append(violations, apperr.Violation{
			Path:    fe.Field(),
			Message: violationMessage(fe),
			Value:   fe.Value(),
		})
	}
	return violations
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", fe.Field())
	case "email":
		return "Invalid email format."
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters.", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s.", fe.Field(), fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters.", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s.", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s.", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s is invalid.", fe.Field())
	}
}
