package service

import (
	"errors"
	"fmt"
)

// Common service errors - sentinel errors used across service implementations.
// These errors represent common conditions that callers may want to check for with errors.Is().
//
// Error handling principles:
// 1. Service methods return sentinel errors for expected error conditions
// 2. Unexpected errors are wrapped in ServiceError
// 3. Callers use errors.Is/errors.As to check for specific error conditions
// 4. The API layer maps service errors to appropriate HTTP status codes
var (
	// ErrDuplicateCredentials indicates the email is already registered.
	// API layer should map this to HTTP 403 Forbidden.
	ErrDuplicateCredentials = errors.New("credentials taken")

	// ErrInvalidCredentials indicates an unknown email or a wrong password.
	// Both cases share this error so callers cannot probe which emails exist.
	// API layer should map this to HTTP 403 Forbidden.
	ErrInvalidCredentials = errors.New("credentials incorrect")

	// ErrForbidden indicates the requester may not modify the resource.
	// It is also returned when the resource does not exist.
	// API layer should map this to HTTP 403 Forbidden.
	ErrForbidden = errors.New("access to resource denied")

	// ErrBookmarkNotFound indicates the bookmark does not exist or is not visible to the requester.
	// API layer should map this to HTTP 404 Not Found.
	ErrBookmarkNotFound = errors.New("bookmark not found")

	// ErrUserNotFound indicates the authenticated user no longer exists.
	// API layer should map this to HTTP 404 Not Found.
	ErrUserNotFound = errors.New("user not found")
)

// ServiceError wraps an unexpected failure with the service and operation it came from.
type ServiceError struct {
	Service string
	Op      string
	Err     error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s service %s operation failed: %v", e.Service, e.Op, e.Err)
	}
	return fmt.Sprintf("%s service %s operation failed", e.Service, e.Op)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
func NewServiceError(service, op string, err error) *ServiceError {
	return &ServiceError{
		Service: service,
		Op:      op,
		Err:     err,
	}
}
