package ports

import (
	"context"
	"time"

	"offpay/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

//go:generate mockgen -source=repositories.go -destination=mocks/repositories_mock.go -package=mocks

// AccountRepository defines persistence for holder accounts and balances.
// Methods accepting pgx.Tx run inside transaction blocks; GetForUpdate and
// GetBalanceForUpdate take pessimistic row locks (per-holder serialization).
type AccountRepository interface {
	Create(ctx context.Context, tx pgx.Tx, account *domain.Account) error
	GetByAddress(ctx context.Context, addr domain.Address) (*domain.Account, error)
	GetForUpdate(ctx context.Context, tx pgx.Tx, addr domain.Address) (*domain.Account, error)
	GetBalance(ctx context.Context, addr domain.Address, asset domain.AssetID) (int64, error)
	GetBalanceForUpdate(ctx context.Context, tx pgx.Tx, addr domain.Address, asset domain.AssetID) (int64, error)
	SetBalance(ctx context.Context, tx pgx.Tx, addr domain.Address, asset domain.AssetID, amount int64) error
	UpdateTail(ctx context.Context, tx pgx.Tx, addr domain.Address, tail string, tailUpdateCount int64) error
	SetPaymentLimit(ctx context.Context, addr domain.Address, limit int64) error
	SetTailUpdateLimit(ctx context.Context, addr domain.Address, limit int64) error
}

// AssetRepository defines persistence for the asset registry.
type AssetRepository interface {
	Create(ctx context.Context, asset *domain.Asset) error
	Get(ctx context.Context, id domain.AssetID) (*domain.Asset, error)
	AddDeposited(ctx context.Context, tx pgx.Tx, id domain.AssetID, amount int64) error
	AddWithdrawn(ctx context.Context, tx pgx.Tx, id domain.AssetID, amount int64) error
}

// ParamsRepository persists the admin-mutable fee rate.
type ParamsRepository interface {
	// Ensure seeds the fee rate row if absent and returns the stored value.
	Ensure(ctx context.Context, defaultBps int64) (int64, error)
	GetFeeRate(ctx context.Context) (int64, error)
	SetFeeRate(ctx context.Context, bps int64) error
}

// FactRepository appends ledger event facts inside the mutating transaction.
type FactRepository interface {
	Record(ctx context.Context, tx pgx.Tx, fact *domain.Fact) error
	ListRecent(ctx context.Context, limit int) ([]domain.Fact, error)
}

// PrecommitStore is the short-lived registry binding a commit hash to a
// merchant and expiry. Consume removes the entry atomically so each
// commit hash is honored at most once.
type PrecommitStore interface {
	Save(ctx context.Context, entry domain.Precommit, ttl time.Duration) error
	// Consume removes and returns the entry, or nil, nil when absent.
	Consume(ctx context.Context, commitHash string) (*domain.Precommit, error)
}

// CustodialPool is the external value-transfer collaborator. It moves
// value between external accounts and the custodial pool; both calls run
// inside the caller's transaction and abort the whole operation on error.
type CustodialPool interface {
	// FundPool moves amount from the holder's external account into the pool.
	FundPool(ctx context.Context, tx pgx.Tx, holder domain.Address, asset domain.AssetID, amount int64) error
	// Payout moves amount from the pool to the recipient's external account.
	Payout(ctx context.Context, tx pgx.Tx, recipient domain.Address, asset domain.AssetID, amount int64) error
	// Balance reads an external account balance (domain.PoolAddress for the pool).
	Balance(ctx context.Context, owner domain.Address, asset domain.AssetID) (int64, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Clock supplies the monotonic time used for precommit expiry checks.
type Clock interface {
	Now() time.Time
}

// HealthChecker verifies connectivity of an infrastructure dependency.
type HealthChecker interface {
	Ping(ctx context.Context) error
	Name() string
}
