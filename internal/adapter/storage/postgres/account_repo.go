package postgres

import (
	"context"
	"errors"
	"fmt"

	"offpay/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// AccountRepo implements ports.AccountRepository.
type AccountRepo struct {
	pool Pool
}

// NewAccountRepo creates a new AccountRepo.
func NewAccountRepo(pool Pool) *AccountRepo {
	return &AccountRepo{pool: pool}
}

const accountColumns = `address, tail, payment_limit, tail_update_count, max_tail_updates, created_at, updated_at`

// Create inserts a new holder account within a transaction.
func (r *AccountRepo) Create(ctx context.Context, tx pgx.Tx, a *domain.Account) error {
	query := `INSERT INTO accounts (address, tail, payment_limit, tail_update_count, max_tail_updates, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := tx.Exec(ctx, query,
		a.Address, a.Tail, a.PaymentLimit,
		a.TailUpdateCount, a.MaxTailUpdates, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// GetByAddress fetches an account (non-locking read).
func (r *AccountRepo) GetByAddress(ctx context.Context, addr domain.Address) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE address = $1`

	a := &domain.Account{}
	err := r.pool.QueryRow(ctx, query, addr).Scan(
		&a.Address, &a.Tail, &a.PaymentLimit,
		&a.TailUpdateCount, &a.MaxTailUpdates, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	return a, nil
}

// GetForUpdate fetches an account with a pessimistic row lock. All
// mutations of a holder serialize on this lock for the life of the
// transaction. This MUST be called within a transaction.
func (r *AccountRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, addr domain.Address) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE address = $1 FOR UPDATE`

	a := &domain.Account{}
	err := tx.QueryRow(ctx, query, addr).Scan(
		&a.Address, &a.Tail, &a.PaymentLimit,
		&a.TailUpdateCount, &a.MaxTailUpdates, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account for update: %w", err)
	}
	return a, nil
}

// GetBalance reads a holder's balance for an asset. A missing row
// reads as zero.
func (r *AccountRepo) GetBalance(ctx context.Context, addr domain.Address, asset domain.AssetID) (int64, error) {
	query := `SELECT balance FROM account_balances WHERE address = $1 AND asset_id = $2`

	var balance int64
	err := r.pool.QueryRow(ctx, query, addr, asset).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("get balance: %w", err)
	}
	return balance, nil
}

// GetBalanceForUpdate reads a balance with a row lock; a missing row
// reads as zero. This MUST be called within a transaction.
func (r *AccountRepo) GetBalanceForUpdate(ctx context.Context, tx pgx.Tx, addr domain.Address, asset domain.AssetID) (int64, error) {
	query := `SELECT balance FROM account_balances WHERE address = $1 AND asset_id = $2 FOR UPDATE`

	var balance int64
	err := tx.QueryRow(ctx, query, addr, asset).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("get balance for update: %w", err)
	}
	return balance, nil
}

// SetBalance overwrites a holder's balance for an asset within a
// transaction, creating the row on first use.
func (r *AccountRepo) SetBalance(ctx context.Context, tx pgx.Tx, addr domain.Address, asset domain.AssetID, amount int64) error {
	query := `INSERT INTO account_balances (address, asset_id, balance)
		VALUES ($1, $2, $3)
		ON CONFLICT (address, asset_id) DO UPDATE SET balance = EXCLUDED.balance`

	if _, err := tx.Exec(ctx, query, addr, asset, amount); err != nil {
		return fmt.Errorf("set balance: %w", err)
	}
	return nil
}

// UpdateTail overwrites the authorization tail and its update count
// within a transaction.
func (r *AccountRepo) UpdateTail(ctx context.Context, tx pgx.Tx, addr domain.Address, tail string, tailUpdateCount int64) error {
	query := `UPDATE accounts SET tail = $1, tail_update_count = $2, updated_at = NOW() WHERE address = $3`

	tag, err := tx.Exec(ctx, query, tail, tailUpdateCount, addr)
	if err != nil {
		return fmt.Errorf("update tail: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account not found: %s", addr)
	}
	return nil
}

// SetPaymentLimit overwrites the holder's per-payment cap.
func (r *AccountRepo) SetPaymentLimit(ctx context.Context, addr domain.Address, limit int64) error {
	query := `UPDATE accounts SET payment_limit = $1, updated_at = NOW() WHERE address = $2`

	tag, err := r.pool.Exec(ctx, query, limit, addr)
	if err != nil {
		return fmt.Errorf("set payment limit: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account not found: %s", addr)
	}
	return nil
}

// SetTailUpdateLimit overwrites the holder's tail refresh cap.
func (r *AccountRepo) SetTailUpdateLimit(ctx context.Context, addr domain.Address, limit int64) error {
	query := `UPDATE accounts SET max_tail_updates = $1, updated_at = NOW() WHERE address = $2`

	tag, err := r.pool.Exec(ctx, query, limit, addr)
	if err != nil {
		return fmt.Errorf("set tail update limit: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account not found: %s", addr)
	}
	return nil
}
