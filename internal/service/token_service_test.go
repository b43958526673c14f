package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTTokenService_GenerateAndValidate(t *testing.T) {
	svc := NewJWTTokenService("test-secret-key", time.Hour, "offpay-ledger")

	token, expiry, err := svc.Generate("operator")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiry, 5*time.Second)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "operator", claims.Subject)
}

func TestJWTTokenService_Validate_WrongSecret(t *testing.T) {
	svc := NewJWTTokenService("test-secret-key", time.Hour, "offpay-ledger")
	other := NewJWTTokenService("different-secret", time.Hour, "offpay-ledger")

	token, _, err := svc.Generate("operator")
	require.NoError(t, err)

	claims, err := other.Validate(token)
	assert.Nil(t, claims)
	assert.Error(t, err)
}

func TestJWTTokenService_Validate_Expired(t *testing.T) {
	svc := NewJWTTokenService("test-secret-key", -time.Minute, "offpay-ledger")

	token, _, err := svc.Generate("operator")
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	assert.Nil(t, claims)
	assert.Error(t, err)
}

func TestJWTTokenService_Validate_Garbage(t *testing.T) {
	svc := NewJWTTokenService("test-secret-key", time.Hour, "offpay-ledger")

	claims, err := svc.Validate("not-a-jwt")
	assert.Nil(t, claims)
	assert.Error(t, err)
}
