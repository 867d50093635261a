package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/phrazzld/bookmark-api/internal/api/shared"
	"github.com/phrazzld/bookmark-api/internal/domain"
	"github.com/phrazzld/bookmark-api/internal/service"
	"github.com/phrazzld/bookmark-api/internal/service/auth"
	"github.com/phrazzld/bookmark-api/internal/store"
)

// genericErrorMessage is returned for every failure without a specific mapping.
const genericErrorMessage = "An unexpected error occurred"

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	// Credential and ownership errors
	case errors.Is(err, service.ErrDuplicateCredentials),
		errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden

	// Not found errors
	case errors.Is(err, service.ErrBookmarkNotFound),
		errors.Is(err, service.ErrUserNotFound),
		store.IsNotFoundError(err):
		return http.StatusNotFound

	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, shared.ErrEmptyBody):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return genericErrorMessage
	}

	var validationErr *domain.ValidationError

	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenNotYetValid):
		return "Invalid token"
	case errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, domain.ErrUnauthorized):
		return "Authentication required"

	case errors.Is(err, service.ErrDuplicateCredentials):
		return "Credentials taken"
	case errors.Is(err, service.ErrInvalidCredentials):
		return "Credentials incorrect"
	case errors.Is(err, service.ErrForbidden):
		return "Access to resource denied"

	case errors.Is(err, service.ErrBookmarkNotFound):
		return "Bookmark not found"
	case errors.Is(err, service.ErrUserNotFound):
		return "User not found"
	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"

	case errors.Is(err, shared.ErrEmptyBody):
		return "Request body required"
	case errors.As(err, &validationErr):
		return fmt.Sprintf("Invalid %s: %s", validationErr.Field, validationErr.Message)
	case errors.Is(err, domain.ErrValidation):
		return SanitizeValidationError(err)
	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	default:
		return genericErrorMessage
	}
}

// SanitizeValidationError turns a domain validation error into a short client
// message. Domain validation messages are fixed strings such as
// "validation failed: title cannot be empty" and carry no user input.
func SanitizeValidationError(err error) string {
	if msg := shared.ValidationMessage(err); msg != "" {
		return msg
	}
	prefix := domain.ErrValidation.Error() + ": "
	if msg := err.Error(); strings.HasPrefix(msg, prefix) {
		return "Validation error: " + strings.TrimPrefix(msg, prefix)
	}
	return "Validation error"
}

// HandleAPIError writes the error response for err: the status from
// MapErrorToStatusCode and a safe message. A non-empty message overrides the default.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, message string) {
	status := MapErrorToStatusCode(err)
	if message == "" {
		message = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}

// HandleValidationError writes a 400 response for request decoding or
// validation failures, naming the first invalid field when possible.
func HandleValidationError(w http.ResponseWriter, r *http.Request, err error) {
	message := shared.ValidationMessage(err)
	switch {
	case message != "":
	case errors.Is(err, shared.ErrEmptyBody):
		message = "Request body required"
	default:
		message = "Invalid request format"
	}
	shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, message, err)
}
