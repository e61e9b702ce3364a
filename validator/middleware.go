package validator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/auriaahmad/civil-defence/errors"
)

// ValidationError represents an individual validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is a slice of ValidationError.
type ValidationErrors []ValidationError

// Error returns a string representation of the validation errors.
func (ve ValidationErrors) Error() string {
	var sb strings.Builder
	for i, err := range ve {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return sb.String()
}

// ValidateMiddleware validates the JSON request body against the provided
// model type before the handler runs. The body is restored so downstream
// handlers can decode it again.
func (v *Validator) ValidateMiddleware(model interface{}) func(next http.Handler) http.Handler {
	modelType := reflect.TypeOf(model)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			instance := reflect.New(modelType).Interface()

			body, err := io.ReadAll(r.Body)
			if err != nil {
				errors.ErrMalformedBody.Write(w)
				return
			}
			r.Body = io.NopCloser(bytes.NewBuffer(body))

			if err := json.Unmarshal(body, instance); err != nil {
				errors.ErrMalformedBody.Write(w)
				return
			}

			if err := v.validator.Struct(instance); err != nil {
				var validationErrors ValidationErrors
				for _, fieldErr := range err.(validatorv10.ValidationErrors) {
					validationErrors = append(validationErrors, ValidationError{
						Field:   fieldErr.Field(),
						Message: getErrorMessage(fieldErr),
					})
				}
				errors.ErrMalformedBody.WithErr(validationErrors).Write(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// getErrorMessage returns a human-readable error message for a validation error.
func getErrorMessage(err validatorv10.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		return fmt.Sprintf("Must be at least %s characters long", err.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters long", err.Param())
	case "cnic":
		return "CNIC must follow XXXXX-XXXXXXX-X format"
	case "pkphone":
		return "Invalid Pakistani phone number"
	case "personname":
		return "Only letters and spaces are allowed"
	case "minage":
		return "Must be at least 18 years old"
	default:
		return fmt.Sprintf("Invalid value: %s", err.Tag())
	}
}
