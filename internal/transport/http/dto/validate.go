package dto

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/developerUmair/ecommerce-backend/internal/domain"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("password_strength", validatePasswordStrength)
}

// validatePasswordStrength requires at least one uppercase letter, one digit
// and one special character. The minimum length is enforced by the min tag.
func validatePasswordStrength(fl validator.FieldLevel) bool {
	password := fl.Field().String()

	var hasUpper, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
		if hasUpper && hasDigit && hasSpecial {
			return true
		}
	}
	return hasUpper && hasDigit && hasSpecial
}

// Validate checks a request DTO and converts validator failures into domain
// validation errors.
func Validate(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return domain.ErrInvalidField("body", err.Error())
	}

	fe := verrs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return domain.ErrMissingField(field)
	case "email":
		return domain.ErrInvalidField(field, "must be a valid email address")
	case "min":
		if field == "password" {
			return domain.ErrWeakPassword(fmt.Sprintf("must be at least %s characters", fe.Param()))
		}
		return domain.ErrInvalidField(field, fmt.Sprintf("must be at least %s characters", fe.Param()))
	case "max":
		return domain.ErrInvalidField(field, fmt.Sprintf("must be at most %s characters", fe.Param()))
	case "password_strength":
		return domain.ErrWeakPassword("must contain at least one uppercase letter, one digit and one special character")
	default:
		return domain.ErrInvalidField(field, "is invalid")
	}
}
