package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules
type Validator struct {
	validator *validator.Validate
}

// New creates a new validator instance with custom rules
func New() *Validator {
	validate := validator.New()

	registerCustomValidators(validate)

	// Use JSON field names for validation error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{
		validator: validate,
	}
}

// Validate validates a struct and returns validation errors
func (v *Validator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return NewValidationError(err.(validator.ValidationErrors))
	}
	return nil
}

// ValidateVar validates a single variable
func (v *Validator) ValidateVar(field interface{}, tag string) error {
	return v.validator.Var(field, tag)
}

// ValidationError represents a validation error with user-friendly messages
type ValidationError struct {
	Errors map[string]string `json:"errors"`
}

// Error implements the error interface
func (e ValidationError) Error() string {
	var messages []string
	for field, message := range e.Errors {
		messages = append(messages, fmt.Sprintf("%s: %s", field, message))
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(messages, ", "))
}

// NewValidationError creates a ValidationError from validator.ValidationErrors
func NewValidationError(errs validator.ValidationErrors) *ValidationError {
	errors := make(map[string]string)

	for _, err := range errs {
		field := err.Field()
		tag := err.Tag()

		switch tag {
		case "required":
			errors[field] = fmt.Sprintf("%s is required", field)
		case "email":
			errors[field] = fmt.Sprintf("%s must be a valid email address", field)
		case "min":
			errors[field] = fmt.Sprintf("%s must be at least %s characters long", field, err.Param())
		case "max":
			errors[field] = fmt.Sprintf("%s must be at most %s characters long", field, err.Param())
		case "uuid4":
			errors[field] = fmt.Sprintf("%s must be a valid UUID", field)
		case "password":
			errors[field] = "password must be 8-16 characters with at least one uppercase letter and one special character"
		case "user_role":
			errors[field] = "role must be one of ADMIN, OWNER, USER"
		case "rating_value":
			errors[field] = "rating value must be between 1 and 5"
		case "gte":
			errors[field] = fmt.Sprintf("%s must be at least %s", field, err.Param())
		case "lte":
			errors[field] = fmt.Sprintf("%s must be at most %s", field, err.Param())
		default:
			errors[field] = fmt.Sprintf("%s is invalid", field)
		}
	}

	return &ValidationError{Errors: errors}
}

// registerCustomValidators registers custom validation rules
func registerCustomValidators(validate *validator.Validate) {
	// Password rule from the sign-up contract: 8-16 chars, at least one
	// uppercase letter and one special character
	validate.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		password := fl.Field().String()
		if len(password) < 8 || len(password) > 16 {
			return false
		}

		hasUpper := regexp.MustCompile(`[A-Z]`).MatchString(password)
		hasSpecial := regexp.MustCompile(`[^A-Za-z0-9]`).MatchString(password)

		return hasUpper && hasSpecial
	})

	// Role validation: the fixed role enumeration
	validate.RegisterValidation("user_role", func(fl validator.FieldLevel) bool {
		role := fl.Field().String()
		switch role {
		case "ADMIN", "OWNER", "USER":
			return true
		}
		return false
	})

	// Rating bounds, checked before any persistence attempt
	validate.RegisterValidation("rating_value", func(fl validator.FieldLevel) bool {
		value := fl.Field().Int()
		return value >= 1 && value <= 5
	})
}

// IsValidEmail checks if an email is valid
func IsValidEmail(email string) bool {
	v := New()
	return v.ValidateVar(email, "required,email") == nil
}

// IsValidPassword checks if a password meets the sign-up requirements
func IsValidPassword(password string) bool {
	v := New()
	return v.ValidateVar(password, "required,password") == nil
}

// IsValidUUID checks if a string is a valid UUID
func IsValidUUID(uuid string) bool {
	v := New()
	return v.ValidateVar(uuid, "required,uuid4") == nil
}
