// Package validator wraps go-playground/validator with the domain
// validations used by the registration API: Pakistani CNIC and phone
// formats, name characters, and the minimum volunteer age.
package validator

import (
	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/auriaahmad/civil-defence/internal"
)

// Validator is a wrapper around the go-playground/validator package.
type Validator struct {
	validator *validatorv10.Validate
}

// New creates a new Validator instance.
func New() *Validator {
	v := validatorv10.New()

	// Register custom validation functions
	_ = v.RegisterValidation("cnic", validateCNIC)
	_ = v.RegisterValidation("pkphone", validatePhone)
	_ = v.RegisterValidation("personname", validateName)
	_ = v.RegisterValidation("minage", validateMinimumAge)

	return &Validator{
		validator: v,
	}
}

// Validate validates a struct using the validator package.
func (v *Validator) Validate(s interface{}) error {
	return v.validator.Struct(s)
}

// validateCNIC accepts a formatted or bare 13-digit CNIC. Empty values
// are valid; combine with required when the field is mandatory.
func validateCNIC(fl validatorv10.FieldLevel) bool {
	if fl.Field().String() == "" {
		return true
	}
	return internal.ValidCNIC(internal.FormatCNIC(fl.Field().String()))
}

// validatePhone accepts Pakistani phone numbers in any of the supported
// prefixes (+92, 92, 0, 03). Empty values are valid.
func validatePhone(fl validatorv10.FieldLevel) bool {
	if fl.Field().String() == "" {
		return true
	}
	return internal.ValidPhone(fl.Field().String())
}

// validateName accepts Latin and Urdu letters plus spaces.
func validateName(fl validatorv10.FieldLevel) bool {
	if fl.Field().String() == "" {
		return true
	}
	return internal.ValidName(fl.Field().String())
}

// validateMinimumAge accepts a YYYY-MM-DD date of birth at least the
// minimum volunteer age in the past.
func validateMinimumAge(fl validatorv10.FieldLevel) bool {
	if fl.Field().String() == "" {
		return true
	}
	return internal.ValidMinimumAge(fl.Field().String())
}
