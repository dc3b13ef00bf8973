package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Host authentication (SEC) ----

func ErrMissingToken() *AppError {
	return New("SEC_001", "Missing bearer token", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New("SEC_002", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Economy request validation (ECO) ----

func ErrInvalidAmount() *AppError {
	return New("ECO_001", "Amount must be a decimal number", http.StatusBadRequest)
}

func ErrInvalidPlayer() *AppError {
	return New("ECO_002", "Player must be a UUID", http.StatusBadRequest)
}

func ErrUnknownCurrency(name string) *AppError {
	return New("ECO_003", fmt.Sprintf("Unknown currency %q", name), http.StatusNotFound)
}

func ErrInvalidBankName() *AppError {
	return New("ECO_004", "Bank name must be 1-64 characters of letters, digits, '_', '-' or '.'", http.StatusBadRequest)
}

func ErrAccountExists() *AppError {
	return New("ECO_005", "Account already exists", http.StatusConflict)
}

func ErrIdempotencyConflict() *AppError {
	return New("ECO_006", "Idempotency key reused with a different request", http.StatusConflict)
}

func ErrIdempotencyInFlight() *AppError {
	return New("ECO_007", "A request with this Idempotency-Key is still in progress", http.StatusConflict)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

func ErrCacheError(err error) *AppError {
	return Wrap("SYS_002", "Cache unavailable", http.StatusServiceUnavailable, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns an ECO_000 validation error carrying message.
func Validation(message string) *AppError {
	return New("ECO_000", message, http.StatusBadRequest)
}
