// Package errors provides custom error types and definitions for the application.
//
//nolint:lll
package errors

import (
	"fmt"
	"net/http"
)

// The custom Error type satisfies the error interface.
// Error() returns a human-readable description of the error.
//
// Error codes in the 40001-49999 range are the user's fault,
// and they return HTTP Status 400 or 404, whatever is most appropriate.
//
// Error codes 50001-59999 are the server's fault
// and they return HTTP Status 500 or 503, or something else if appropriate.
//
// NEVER change any of the current error codes, only append new errors after the current last 4XXX or 5XXX.
// If you notice there's a gap, DON'T fill it in; that code belonged to a retired error and shouldn't be reused.
// There's no correlation between Code and HTTP Status.
var (
	// Authentication errors (401)
	ErrUnauthorized       = Error{Code: 40001, HTTPstatus: http.StatusUnauthorized, Err: fmt.Errorf("authentication required"), LogLevel: "info"}
	ErrInvalidCredentials = Error{Code: 40002, HTTPstatus: http.StatusUnauthorized, Err: fmt.Errorf("invalid username or password"), LogLevel: "info"}

	// Validation errors (400)
	ErrMalformedBody     = Error{Code: 40004, HTTPstatus: http.StatusBadRequest, Err: fmt.Errorf("invalid JSON request body")}
	ErrValidationFailed  = Error{Code: 40005, HTTPstatus: http.StatusBadRequest, Err: fmt.Errorf("registration validation failed")}
	ErrMalformedURLParam = Error{Code: 40006, HTTPstatus: http.StatusBadRequest, Err: fmt.Errorf("malformed URL parameter")}
	ErrInvalidStatus     = Error{Code: 40007, HTTPstatus: http.StatusBadRequest, Err: fmt.Errorf("invalid volunteer status")}
	ErrInvalidCSVData    = Error{Code: 40008, HTTPstatus: http.StatusBadRequest, Err: fmt.Errorf("invalid CSV data")}
	ErrInvalidLocation   = Error{Code: 40009, HTTPstatus: http.StatusBadRequest, Err: fmt.Errorf("unknown location")}

	// Not found errors (404)
	ErrVolunteerNotFound = Error{Code: 40401, HTTPstatus: http.StatusNotFound, Err: fmt.Errorf("volunteer not found")}

	// Conflict errors (409)
	ErrDuplicateConflict = Error{Code: 40901, HTTPstatus: http.StatusConflict, Err: fmt.Errorf("duplicate conflict")}

	// Internal server errors (500)
	ErrMarshalingServerJSONFailed = Error{Code: 50001, HTTPstatus: http.StatusInternalServerError, Err: fmt.Errorf("marshaling (server-side) JSON failed")}
	ErrGenericInternalServerError = Error{Code: 50002, HTTPstatus: http.StatusInternalServerError, Err: fmt.Errorf("internal server error")}
	ErrStorageFailure             = Error{Code: 50003, HTTPstatus: http.StatusInternalServerError, Err: fmt.Errorf("storage operation failed")}
)
