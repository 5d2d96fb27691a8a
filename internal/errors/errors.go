// Package errors provides custom error types for the Wealthdesk API.
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

// User (principal) errors.
var (
	ErrUserNotFound   = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateEmail = &AppError{Code: "DUPLICATE_EMAIL", Message: "A record with this email already exists", StatusCode: http.StatusConflict}
)

// Client errors.
var (
	ErrClientNotFound = &AppError{Code: "CLIENT_NOT_FOUND", Message: "Client not found", StatusCode: http.StatusNotFound}
)

// Wallet errors.
var (
	ErrWalletItemNotFound      = &AppError{Code: "WALLET_ITEM_NOT_FOUND", Message: "Wallet item not found", StatusCode: http.StatusNotFound}
	ErrIdealWalletItemNotFound = &AppError{Code: "IDEAL_WALLET_ITEM_NOT_FOUND", Message: "Ideal wallet item not found", StatusCode: http.StatusNotFound}
)

// Goal errors.
var (
	ErrGoalNotFound = &AppError{Code: "GOAL_NOT_FOUND", Message: "Goal not found", StatusCode: http.StatusNotFound}
)

// Insurance errors.
var (
	ErrInsuranceNotFound = &AppError{Code: "INSURANCE_NOT_FOUND", Message: "Insurance policy not found", StatusCode: http.StatusNotFound}
)

// Retirement profile errors.
var (
	ErrRetirementProfileNotFound = &AppError{Code: "RETIREMENT_PROFILE_NOT_FOUND", Message: "Retirement profile not found", StatusCode: http.StatusNotFound}
	ErrRetirementProfileExists   = &AppError{Code: "RETIREMENT_PROFILE_EXISTS", Message: "A retirement profile already exists for this client", StatusCode: http.StatusConflict}
)

// Net worth errors.
var (
	ErrSnapshotNotFound = &AppError{Code: "SNAPSHOT_NOT_FOUND", Message: "Net worth snapshot not found", StatusCode: http.StatusNotFound}
)

// Simulation errors.
var (
	ErrSimulationNotFound = &AppError{Code: "SIMULATION_NOT_FOUND", Message: "Simulation not found", StatusCode: http.StatusNotFound}
)

// Event errors.
var (
	ErrEventNotFound = &AppError{Code: "EVENT_NOT_FOUND", Message: "Event not found", StatusCode: http.StatusNotFound}
)
