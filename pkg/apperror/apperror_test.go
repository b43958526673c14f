package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("ACCT_002", "Insufficient balance", http.StatusPaymentRequired),
			expected: "[ACCT_002] Insufficient balance",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_001", "DB error", http.StatusInternalServerError, fmt.Errorf("connection refused")),
			expected: "[SYS_001] DB error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_IsNilUnwrap(t *testing.T) {
	appErr := New("ACCT_003", "test", http.StatusBadRequest)
	assert.Nil(t, appErr.Unwrap())
}

func TestErrorCatalog(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"NotAdmin", ErrNotAdmin(), "SEC_001", 403},
		{"InvalidSecret", ErrInvalidSecret(), "SEC_002", 401},
		{"InvalidPrecommit", ErrInvalidPrecommit(), "SEC_003", 403},
		{"AccountNotInitialized", ErrAccountNotInitialized(), "ACCT_001", 404},
		{"InsufficientBalance", ErrInsufficientBalance(), "ACCT_002", 402},
		{"InvalidAmount", ErrInvalidAmount(), "ACCT_003", 400},
		{"AssetNotSupported", ErrAssetNotSupported(), "ASSET_001", 400},
		{"AlreadySupported", ErrAlreadySupported(), "ASSET_002", 409},
		{"InvalidFeeRate", ErrInvalidFeeRate(), "ASSET_003", 400},
		{"PaymentLimitExceeded", ErrPaymentLimitExceeded(), "POLICY_001", 422},
		{"TailUpdateLimitExceeded", ErrTailUpdateLimitExceeded(), "POLICY_002", 422},
		{"InvalidCredentials", ErrInvalidCredentials(), "AUTH_001", 401},
		{"InvalidToken", ErrInvalidToken(), "AUTH_002", 401},
		{"RateLimitExceeded", ErrRateLimitExceeded(), "RATE_001", 429},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestInternalError(t *testing.T) {
	inner := fmt.Errorf("pg: connection closed")
	err := InternalError(inner)
	assert.Equal(t, "SYS_001", err.Code)
	assert.Equal(t, 500, err.HTTPStatus)
	assert.True(t, errors.Is(err, inner))
}

func TestValidation(t *testing.T) {
	err := Validation("holder address required")
	assert.Equal(t, "ACCT_003", err.Code)
	assert.Equal(t, 400, err.HTTPStatus)
	assert.Contains(t, err.Message, "holder address")
}
