package postgres

import (
	"context"
	"fmt"

	"offpay/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// FactRepo implements ports.FactRepository with an append-only table.
type FactRepo struct {
	pool Pool
}

// NewFactRepo creates a new FactRepo.
func NewFactRepo(pool Pool) *FactRepo {
	return &FactRepo{pool: pool}
}

// Record appends a fact. When tx is non-nil the insert joins the
// caller's transaction and disappears with it on rollback; precommit
// facts pass nil because they have no ledger transaction.
func (r *FactRepo) Record(ctx context.Context, tx pgx.Tx, f *domain.Fact) error {
	query := `INSERT INTO facts (kind, actor, counterparty, asset_id, amount, fee, commit_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	args := []any{f.Kind, f.Actor, f.Counterparty, f.Asset, f.Amount, f.Fee, f.CommitHash, f.CreatedAt}

	var err error
	if tx != nil {
		_, err = tx.Exec(ctx, query, args...)
	} else {
		_, err = r.pool.Exec(ctx, query, args...)
	}
	if err != nil {
		return fmt.Errorf("insert fact: %w", err)
	}
	return nil
}

// ListRecent returns the newest facts, most recent first.
func (r *FactRepo) ListRecent(ctx context.Context, limit int) ([]domain.Fact, error) {
	query := `SELECT id, kind, actor, counterparty, asset_id, amount, fee, commit_hash, created_at
		FROM facts ORDER BY id DESC LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list facts: %w", err)
	}
	defer rows.Close()

	var facts []domain.Fact
	for rows.Next() {
		var f domain.Fact
		if err := rows.Scan(
			&f.ID, &f.Kind, &f.Actor, &f.Counterparty,
			&f.Asset, &f.Amount, &f.Fee, &f.CommitHash, &f.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan fact: %w", err)
		}
		facts = append(facts, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate facts: %w", err)
	}
	return facts, nil
}
