package postgres

import (
	"context"
	"errors"
	"fmt"

	"offpay/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// CustodyRepo implements ports.CustodialPool over the external_accounts
// table. Rows model the value outside the ledger: holder and merchant
// external accounts plus the pool row (domain.PoolAddress). Transfers
// run inside the caller's transaction so a failed leg aborts the whole
// operation.
type CustodyRepo struct {
	pool Pool
}

// NewCustodyRepo creates a new CustodyRepo.
func NewCustodyRepo(pool Pool) *CustodyRepo {
	return &CustodyRepo{pool: pool}
}

// FundPool moves amount from the holder's external account into the pool.
func (r *CustodyRepo) FundPool(ctx context.Context, tx pgx.Tx, holder domain.Address, asset domain.AssetID, amount int64) error {
	if err := debit(ctx, tx, holder, asset, amount); err != nil {
		return fmt.Errorf("debit external account of %s: %w", holder, err)
	}
	if err := credit(ctx, tx, domain.PoolAddress, asset, amount); err != nil {
		return fmt.Errorf("credit pool: %w", err)
	}
	return nil
}

// Payout moves amount from the pool to the recipient's external account.
func (r *CustodyRepo) Payout(ctx context.Context, tx pgx.Tx, recipient domain.Address, asset domain.AssetID, amount int64) error {
	if err := debit(ctx, tx, domain.PoolAddress, asset, amount); err != nil {
		return fmt.Errorf("debit pool: %w", err)
	}
	if err := credit(ctx, tx, recipient, asset, amount); err != nil {
		return fmt.Errorf("credit external account of %s: %w", recipient, err)
	}
	return nil
}

// Balance reads an external account balance; missing rows read as zero.
func (r *CustodyRepo) Balance(ctx context.Context, owner domain.Address, asset domain.AssetID) (int64, error) {
	query := `SELECT balance FROM external_accounts WHERE owner = $1 AND asset_id = $2`

	var balance int64
	err := r.pool.QueryRow(ctx, query, owner, asset).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("get external balance: %w", err)
	}
	return balance, nil
}

// debit subtracts amount, guarded against going negative. Zero rows
// affected means either a missing account or insufficient funds.
func debit(ctx context.Context, tx pgx.Tx, owner domain.Address, asset domain.AssetID, amount int64) error {
	query := `UPDATE external_accounts SET balance = balance - $1
		WHERE owner = $2 AND asset_id = $3 AND balance >= $1`

	tag, err := tx.Exec(ctx, query, amount, owner, asset)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("insufficient external balance")
	}
	return nil
}

func credit(ctx context.Context, tx pgx.Tx, owner domain.Address, asset domain.AssetID, amount int64) error {
	query := `INSERT INTO external_accounts (owner, asset_id, balance)
		VALUES ($1, $2, $3)
		ON CONFLICT (owner, asset_id) DO UPDATE SET balance = external_accounts.balance + EXCLUDED.balance`

	_, err := tx.Exec(ctx, query, owner, asset, amount)
	return err
}
