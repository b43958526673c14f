package ports

import (
	"context"
	"time"

	"offpay/internal/core/domain"
)

//go:generate mockgen -source=services.go -destination=mocks/services_mock.go -package=mocks

// ChainAuthorizer encapsulates the hash-chain commitment scheme and the
// commit-hash derivation shared by precommit and completion.
type ChainAuthorizer interface {
	// TailFromSecret returns the lowercase hex SHA-256 of secret — the
	// commitment a holder stores before revealing the secret.
	TailFromSecret(secret []byte) string
	// Verify reports whether hex(SHA-256(secret)) equals tail byte-exactly.
	Verify(tail string, secret []byte) bool
	// NextTail returns the tail stored after a successful settlement,
	// according to the configured chain mode.
	NextTail(secret []byte) string
	// CommitHash derives the lowercase hex SHA-256 over the canonical
	// serialization of (payer, recipient, amount, secret, asset).
	CommitHash(payer, recipient domain.Address, amount int64, secret []byte, asset domain.AssetID) string
}

// --- Service Ports (Business Logic) ---

// LedgerService defines balance, tail and limit operations for holders.
type LedgerService interface {
	Deposit(ctx context.Context, req DepositRequest) (*domain.DepositReceipt, error)
	Withdraw(ctx context.Context, req WithdrawRequest) (*domain.WithdrawReceipt, error)
	RefreshTail(ctx context.Context, holder domain.Address, newTail string) (*domain.Account, error)
	SetPaymentLimit(ctx context.Context, holder domain.Address, limit int64) error
	SetTailUpdateLimit(ctx context.Context, holder domain.Address, limit int64) error
	GetBalance(ctx context.Context, holder domain.Address, asset domain.AssetID) (int64, error)
	GetAccount(ctx context.Context, holder domain.Address) (*domain.Account, error)
}

// DepositRequest holds validated input for a deposit.
type DepositRequest struct {
	Holder domain.Address
	Asset  domain.AssetID
	Amount int64
	// TailCandidate is an optional new authorization tail; ignored when
	// empty or equal to the stored tail.
	TailCandidate string
}

// WithdrawRequest holds validated input for a withdrawal.
type WithdrawRequest struct {
	Holder domain.Address
	Asset  domain.AssetID
	Amount int64
}

// SettlementService orchestrates the two-phase precommit/complete protocol.
type SettlementService interface {
	Precommit(ctx context.Context, req PrecommitRequest) (*domain.PrecommitReceipt, error)
	Complete(ctx context.Context, req CompleteRequest) (*domain.SettlementReceipt, error)
}

// PrecommitRequest holds the payment parameters a merchant binds before
// settlement. The commit hash is derived server-side from these fields.
type PrecommitRequest struct {
	Merchant  domain.Address
	Payer     domain.Address
	Recipient domain.Address
	Amount    int64
	Asset     domain.AssetID
	Secret    []byte
}

// CompleteRequest holds the parameters for settling a payment.
type CompleteRequest struct {
	Caller     domain.Address
	Secret     []byte
	Payer      domain.Address
	Recipient  domain.Address
	Amount     int64
	Asset      domain.AssetID
	CommitHash string // lowercase hex; ignored on the paymaster path
}

// AssetService defines asset registry administration and reads.
type AssetService interface {
	AddAsset(ctx context.Context, caller domain.Address, id domain.AssetID) (*domain.Asset, error)
	SetFeeRate(ctx context.Context, caller domain.Address, bps int64) error
	IsSupported(ctx context.Context, id domain.AssetID) (bool, error)
	Stats(ctx context.Context, id domain.AssetID) (*domain.AssetStats, error)
}

// AuthService defines operator authentication.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, time.Time, error) // token, expiry, error
}

// TokenService handles JWT token operations for operator sessions.
type TokenService interface {
	Generate(subject string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Subject string
}

// HashService handles operator password hashing.
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}
