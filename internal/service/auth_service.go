package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"offpay/internal/core/ports"
	"offpay/pkg/apperror"
)

// AuthServiceImpl implements ports.AuthService for the single operator
// account configured at deploy time. Holder and merchant operations do
// not authenticate through here: the revealed secret is itself the
// authorization for payments.
type AuthServiceImpl struct {
	username     string
	passwordHash string
	hashSvc      ports.HashService
	tokenSvc     ports.TokenService
}

// NewAuthService creates a new AuthServiceImpl.
func NewAuthService(username, passwordHash string, hashSvc ports.HashService, tokenSvc ports.TokenService) *AuthServiceImpl {
	return &AuthServiceImpl{
		username:     username,
		passwordHash: passwordHash,
		hashSvc:      hashSvc,
		tokenSvc:     tokenSvc,
	}
}

// Login validates the operator credentials and returns a JWT token.
func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	if subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) != 1 {
		// Still burn a hash verification so the response time does not
		// reveal whether the username matched.
		_, _ = s.hashSvc.Verify(password, s.passwordHash)
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	valid, err := s.hashSvc.Verify(password, s.passwordHash)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("verify password: %w", err))
	}
	if !valid {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	token, expiry, err := s.tokenSvc.Generate(s.username)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}

	return token, expiry, nil
}
