package errors

import (
	"net/http"

	"shelf/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
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
func (e *BaseError) Details() string {
	return e.details
}

// Predefined error types
var (
	// Account errors
	ErrUsernameTaken = NewBaseError(
		http.StatusConflict,
		"USERNAME_TAKEN",
		"Username is already taken",
		"",
	)

	ErrAccountNotFound = NewBaseError(
		http.StatusNotFound,
		"ACCOUNT_NOT_FOUND",
		"Account not found",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid username or password",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Failed to process password",
		"",
	)

	ErrPasswordStrength = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_STRENGTH",
		"Password does not meet the strength requirements",
		"",
	)

	// Session token errors. The three engine errors never reach a client directly;
	// the auth middleware collapses them into ErrInvalidToken.
	ErrMalformedToken = NewBaseError(
		http.StatusUnauthorized,
		"MALFORMED_TOKEN",
		"Malformed token",
		"",
	)

	ErrInvalidSignature = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_SIGNATURE",
		"Invalid token signature",
		"",
	)

	ErrExpiredToken = NewBaseError(
		http.StatusUnauthorized,
		"EXPIRED_TOKEN",
		"Token expired",
		"",
	)

	ErrMissingToken = NewBaseError(
		http.StatusUnauthorized,
		"MISSING_TOKEN",
		"Missing auth token",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Invalid auth token",
		"",
	)

	// Spotify linking errors
	ErrSpotifyNotLinked = NewBaseError(
		http.StatusBadRequest,
		"SPOTIFY_NOT_LINKED",
		"Link Spotify before using lists or ratings",
		"",
	)

	ErrMissingVerifier = NewBaseError(
		http.StatusBadRequest,
		"MISSING_VERIFIER",
		"No pending Spotify link attempt, start linking again",
		"",
	)

	ErrTokenExchangeFailed = NewBaseError(
		http.StatusBadGateway,
		"TOKEN_EXCHANGE_FAILED",
		"Spotify rejected the authorization code",
		"",
	)

	ErrLinkFailed = NewBaseError(
		http.StatusBadGateway,
		"LINK_FAILED",
		"Could not load the Spotify profile, start linking again",
		"",
	)

	ErrAlreadyLinked = NewBaseError(
		http.StatusConflict,
		"ALREADY_LINKED",
		"This Spotify account is already linked",
		"",
	)

	ErrReauthRequired = NewBaseError(
		http.StatusUnauthorized,
		"REAUTH_REQUIRED",
		"Spotify authorization expired, link Spotify again",
		"",
	)

	// List errors
	ErrListNotFound = NewBaseError(
		http.StatusNotFound,
		"LIST_NOT_FOUND",
		"List not found",
		"",
	)

	ErrListItemNotFound = NewBaseError(
		http.StatusNotFound,
		"LIST_ITEM_NOT_FOUND",
		"List item not found",
		"",
	)

	ErrListForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"You do not have access to this list",
		"",
	)

	ErrReorderMismatch = NewBaseError(
		http.StatusBadRequest,
		"REORDER_MISMATCH",
		"ordered_item_ids must list every item of the list exactly once",
		"",
	)

	ErrInvalidItemType = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ITEM_TYPE",
		"item_type must be one of album, track, artist",
		"",
	)

	// Rating errors
	ErrRatingOutOfRange = NewBaseError(
		http.StatusBadRequest,
		"RATING_OUT_OF_RANGE",
		"rating must be between 1 and 10",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed, please retry",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

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

// Unwrap exposes the driver error to errors.Is/As.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
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
	return "Database write failed, please retry"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
