package utils

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sideforge/backend/internal/apperr"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return v
}

// ValidateStruct checks a request DTO against its validate tags and reports
// every violation as one entry in the error's details list.
func ValidateStruct(value interface{}) error {
	err := validate.Struct(value)
	if err == nil {
		return nil
	}

	violations, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperr.BadRequest("invalid request body")
	}

	details := make([]string, 0, len(violations))
	for _, violation := range violations {
		details = append(details, describeViolation(violation))
	}
	return apperr.Validation(details)
}

func describeViolation(v validator.FieldError) string {
	switch v.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", v.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", v.Field())
	case "min":
		if v.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", v.Field(), v.Param())
		}
		return fmt.Sprintf("%s must be at least %s", v.Field(), v.Param())
	case "max":
		if v.Kind() == reflect.String {
			return fmt.Sprintf("%s must not exceed %s characters", v.Field(), v.Param())
		}
		return fmt.Sprintf("%s must not exceed %s", v.Field(), v.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", v.Field(), v.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", v.Field(), v.Param())
	default:
		return fmt.Sprintf("%s failed the %s constraint", v.Field(), v.Tag())
	}
}
