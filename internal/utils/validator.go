// internal/utils/validator.go
package utils

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("slug", validateSlug)
	validate.RegisterValidation("phone", validatePhone)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateSlug(fl validator.FieldLevel) bool {
	slug := fl.Field().String()

	// URL-safe: lowercase alphanumerics separated by single hyphens
	if len(slug) < 1 || len(slug) > 255 {
		return false
	}

	matched, _ := regexp.MatchString("^[a-z0-9]+(-[a-z0-9]+)*$", slug)
	return matched
}

func validatePhone(fl validator.FieldLevel) bool {
	phone := fl.Field().String()

	// Digits with optional leading +, spaces, and hyphens, 7-20 characters
	if len(phone) < 7 || len(phone) > 20 {
		return false
	}

	matched, _ := regexp.MatchString(`^\+?[0-9][0-9 \-]+$`, phone)
	return matched
}

type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   strings.ToLower(e.Field()),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "email":
		return "Invalid email format"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "slug":
		return "Slug must contain only lowercase letters, numbers, and hyphens"
	case "phone":
		return "Invalid phone number"
	case "ltfield":
		return e.Field() + " must be less than " + e.Param()
	default:
		return e.Field() + " is invalid"
	}
}
