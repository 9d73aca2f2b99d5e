// Package errors provides custom error types for the Finera API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication & authorization errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password", StatusCode: http.StatusUnauthorized}
	ErrForbidden          = &AppError{Code: "FORBIDDEN", Message: "Access denied", StatusCode: http.StatusForbidden}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// User errors.
var (
	ErrUserNotFound   = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateEmail = &AppError{Code: "DUPLICATE_EMAIL", Message: "A user with this email already exists", StatusCode: http.StatusConflict}
)

// Category errors.
var (
	ErrCategoryNotFound = &AppError{Code: "CATEGORY_NOT_FOUND", Message: "Category not found", StatusCode: http.StatusNotFound}
)

// Period & transaction errors.
var (
	ErrPeriodNotFound      = &AppError{Code: "PERIOD_NOT_FOUND", Message: "Period not found", StatusCode: http.StatusNotFound}
	ErrTransactionNotFound = &AppError{Code: "TRANSACTION_NOT_FOUND", Message: "Transaction not found", StatusCode: http.StatusNotFound}
)

// Document processing errors.
var (
	ErrDocumentUnreadable = &AppError{Code: "DOCUMENT_UNREADABLE", Message: "Document could not be read", StatusCode: http.StatusBadRequest}
	ErrEmptyDocument      = &AppError{Code: "EMPTY_DOCUMENT", Message: "Document contains no extractable text", StatusCode: http.StatusBadRequest}
)

// AI provider errors. Selecting an unknown or unconfigured provider is a
// caller mistake; an unparseable provider response is an upstream fault.
var (
	ErrUnknownProvider       = &AppError{Code: "UNKNOWN_PROVIDER", Message: "Unknown AI provider", StatusCode: http.StatusBadRequest}
	ErrProviderNotConfigured = &AppError{Code: "PROVIDER_NOT_CONFIGURED", Message: "AI provider is not configured", StatusCode: http.StatusBadRequest}
	ErrAIResponseInvalid     = &AppError{Code: "AI_RESPONSE_INVALID", Message: "AI provider returned an unusable response", StatusCode: http.StatusBadGateway}
	ErrAIRequestFailed       = &AppError{Code: "AI_REQUEST_FAILED", Message: "AI provider request failed", StatusCode: http.StatusBadGateway}
)
