package handlers

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the go-playground/validator library to implement Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// ToggleRequest is what a mobile menu button posts.
type ToggleRequest struct {
	ID    string `param:"id"`
	State string `form:"state"`
}

var fieldMessages = map[string]string{
	"name.required":  "Please tell me your name.",
	"name.max":       "Name must be 100 characters or fewer.",
	"email.required": "Please enter your email address.",
	"email.email":    "Enter a valid email address.",
	"message.max":    "Message must be 2000 characters or fewer.",
}

// fieldErrors turns validation failures into one message per form field.
func fieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		if _, seen := out[field]; seen {
			continue
		}
		msg, ok := fieldMessages[field+"."+fe.Tag()]
		if !ok {
			msg = "This field is invalid."
		}
		out[field] = msg
	}
	return out
}
