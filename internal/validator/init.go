package validator

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	// Initialize validation
	validate = validator.New(validator.WithRequiredStructEnabled())
}

// GetValidator returns the shared validator used for request bodies and configuration.
func GetValidator() *validator.Validate {
	return validate
}
