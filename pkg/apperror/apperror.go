package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error with a stable code that maps to HTTP responses.
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

// ---- Authorization (SEC) ----

func ErrNotAdmin() *AppError {
	return New("SEC_001", "Caller is not the admin", http.StatusForbidden)
}

func ErrInvalidSecret() *AppError {
	return New("SEC_002", "Secret does not match the stored authorization tail", http.StatusUnauthorized)
}

func ErrInvalidPrecommit() *AppError {
	return New("SEC_003", "Precommit is missing, mismatched, consumed, or expired", http.StatusForbidden)
}

// ---- Account state (ACCT) ----

func ErrAccountNotInitialized() *AppError {
	return New("ACCT_001", "Account has not been initialized by a deposit", http.StatusNotFound)
}

func ErrInsufficientBalance() *AppError {
	return New("ACCT_002", "Insufficient balance", http.StatusPaymentRequired)
}

func ErrInvalidAmount() *AppError {
	return New("ACCT_003", "Amount must be positive", http.StatusBadRequest)
}

// ---- Asset registry (ASSET) ----

func ErrAssetNotSupported() *AppError {
	return New("ASSET_001", "Asset is not supported", http.StatusBadRequest)
}

func ErrAlreadySupported() *AppError {
	return New("ASSET_002", "Asset is already supported", http.StatusConflict)
}

func ErrInvalidFeeRate() *AppError {
	return New("ASSET_003", "Fee rate must be between 0 and 10000 basis points", http.StatusBadRequest)
}

// ---- Policy limits (POLICY) ----

func ErrPaymentLimitExceeded() *AppError {
	return New("POLICY_001", "Amount exceeds the holder's payment limit", http.StatusUnprocessableEntity)
}

func ErrTailUpdateLimitExceeded() *AppError {
	return New("POLICY_002", "Tail update limit exceeded", http.StatusUnprocessableEntity)
}

// ---- Operator authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_002", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Rate limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns an ACCT_003-style validation error with a custom message.
func Validation(message string) *AppError {
	return New("ACCT_003", message, http.StatusBadRequest)
}
