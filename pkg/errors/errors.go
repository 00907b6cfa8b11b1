package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents different types of errors in the system
type ErrorType string

const (
	// ErrorTypeNotFound indicates a resource was not found
	ErrorTypeNotFound ErrorType = "NOT_FOUND"

	// ErrorTypeValidation indicates a validation error (invalid sort key,
	// invalid filter value, malformed coordinates)
	ErrorTypeValidation ErrorType = "VALIDATION"

	// ErrorTypeNoLocation indicates that neither a device location nor a
	// free-text location was provided; the caller must prompt for input
	ErrorTypeNoLocation ErrorType = "NO_LOCATION"

	// ErrorTypeLocationUnavailable indicates the device location request
	// was denied or timed out
	ErrorTypeLocationUnavailable ErrorType = "LOCATION_UNAVAILABLE"

	// ErrorTypeGeocodeFailed indicates the geocoder returned no match for
	// a free-text location
	ErrorTypeGeocodeFailed ErrorType = "GEOCODE_FAILED"

	// ErrorTypeInternal indicates an internal server error
	ErrorTypeInternal ErrorType = "INTERNAL"

	// ErrorTypeExternal indicates an error from an external service
	ErrorTypeExternal ErrorType = "EXTERNAL"

	// ErrorTypeUnavailable indicates a dependency (e.g. report storage)
	// is temporarily unavailable; the operation may be retried
	ErrorTypeUnavailable ErrorType = "UNAVAILABLE"
)

// AppError represents an application error
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap implements the unwrap interface
func (e *AppError) Unwrap() error {
	return e.Err
}

// IsType reports whether err is an AppError of the given type.
func IsType(err error, t ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == t
	}
	return false
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: message,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
	}
}

// NewNoLocationError creates an error for searches with no usable location
func NewNoLocationError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeNoLocation,
		Message: message,
	}
}

// NewLocationUnavailableError creates an error for denied or timed-out
// device location requests
func NewLocationUnavailableError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeLocationUnavailable,
		Message: message,
		Err:     err,
	}
}

// NewGeocodeFailedError creates an error for unresolvable location text
func NewGeocodeFailedError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeGeocodeFailed,
		Message: message,
		Err:     err,
	}
}

// NewInternalError creates a new internal error
func NewInternalError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInternal,
		Message: message,
		Err:     err,
	}
}

// NewExternalError creates a new external service error
func NewExternalError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeExternal,
		Message: message,
		Err:     err,
	}
}

// NewUnavailableError creates a new dependency-unavailable error
func NewUnavailableError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeUnavailable,
		Message: message,
		Err:     err,
	}
}
