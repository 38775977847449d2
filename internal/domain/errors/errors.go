package errors

import (
	"net/http"

	"atlas/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() any      // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   any
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string, details any) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() any {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details any) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Profile-related errors
	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"Business profile not found",
		nil,
	)

	ErrProfileAlreadyExists = NewBaseError(
		http.StatusConflict,
		"PROFILE_ALREADY_EXISTS",
		"This account already owns a business profile",
		nil,
	)

	ErrProfileOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"PROFILE_OWNERSHIP_VIOLATION",
		"You do not have permission to manage this profile",
		nil,
	)

	ErrInvalidCoordinates = NewBaseError(
		http.StatusBadRequest,
		"INVALID_COORDINATES",
		"Latitude and longitude must form a valid coordinate pair",
		nil,
	)

	// Category-related errors
	ErrCategoryNotFound = NewBaseError(
		http.StatusNotFound,
		"CATEGORY_NOT_FOUND",
		"Category not found",
		nil,
	)

	// Follow-related errors
	ErrFollowNotFound = NewBaseError(
		http.StatusNotFound,
		"FOLLOW_NOT_FOUND",
		"You are not following this profile",
		nil,
	)

	// Social link-related errors
	ErrInvalidSocialURL = NewBaseError(
		http.StatusBadRequest,
		"INVALID_SOCIAL_URL",
		"The URL does not match the selected platform",
		nil,
	)

	ErrUnsupportedPlatform = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_PLATFORM",
		"The social platform is not supported",
		nil,
	)

	ErrSocialLinkNotFound = NewBaseError(
		http.StatusNotFound,
		"SOCIAL_LINK_NOT_FOUND",
		"No link attached for this platform",
		nil,
	)

	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		nil,
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusUnprocessableEntity,
		"VALIDATION_FAILED",
		"The given data was invalid",
		nil,
	)

	// Authentication and authorization errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		nil,
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		nil,
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		nil,
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		nil,
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		nil,
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		nil,
	)
)

// NewValidationError builds a 422 error carrying a field name to messages map.
func NewValidationError(fieldErrors map[string][]string) AppError {
	return ErrValidationFailed.WithDetails(fieldErrors)
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() any {
	return e.details
}
