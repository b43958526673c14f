package postgres

import (
	"context"
	"errors"
	"fmt"

	"offpay/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// AssetRepo implements ports.AssetRepository.
type AssetRepo struct {
	pool Pool
}

// NewAssetRepo creates a new AssetRepo.
func NewAssetRepo(pool Pool) *AssetRepo {
	return &AssetRepo{pool: pool}
}

// Create inserts a new asset into the registry.
func (r *AssetRepo) Create(ctx context.Context, a *domain.Asset) error {
	query := `INSERT INTO assets (id, supported, total_deposited, total_withdrawn, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query,
		a.ID, a.Supported, a.TotalDeposited, a.TotalWithdrawn, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert asset: %w", err)
	}
	return nil
}

// Get fetches an asset by its identifier.
func (r *AssetRepo) Get(ctx context.Context, id domain.AssetID) (*domain.Asset, error) {
	query := `SELECT id, supported, total_deposited, total_withdrawn, created_at, updated_at
		FROM assets WHERE id = $1`

	a := &domain.Asset{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.Supported, &a.TotalDeposited, &a.TotalWithdrawn, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get asset: %w", err)
	}
	return a, nil
}

// AddDeposited bumps the lifetime deposit counter within a transaction.
func (r *AssetRepo) AddDeposited(ctx context.Context, tx pgx.Tx, id domain.AssetID, amount int64) error {
	query := `UPDATE assets SET total_deposited = total_deposited + $1, updated_at = NOW() WHERE id = $2`

	tag, err := tx.Exec(ctx, query, amount, id)
	if err != nil {
		return fmt.Errorf("add deposited: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("asset not found: %s", id)
	}
	return nil
}

// AddWithdrawn bumps the lifetime withdrawal counter within a transaction.
func (r *AssetRepo) AddWithdrawn(ctx context.Context, tx pgx.Tx, id domain.AssetID, amount int64) error {
	query := `UPDATE assets SET total_withdrawn = total_withdrawn + $1, updated_at = NOW() WHERE id = $2`

	tag, err := tx.Exec(ctx, query, amount, id)
	if err != nil {
		return fmt.Errorf("add withdrawn: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("asset not found: %s", id)
	}
	return nil
}
