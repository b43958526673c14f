package postgres

import (
	"context"
	"fmt"
)

// ParamsRepo implements ports.ParamsRepository. The fee rate lives in a
// single-row table so admin updates take effect without a restart.
type ParamsRepo struct {
	pool Pool
}

// NewParamsRepo creates a new ParamsRepo.
func NewParamsRepo(pool Pool) *ParamsRepo {
	return &ParamsRepo{pool: pool}
}

// Ensure seeds the fee rate row on first boot and returns the stored
// value, which may differ from the default after an admin update.
func (r *ParamsRepo) Ensure(ctx context.Context, defaultBps int64) (int64, error) {
	seed := `INSERT INTO system_params (id, fee_rate_bps, updated_at)
		VALUES (1, $1, NOW()) ON CONFLICT (id) DO NOTHING`
	if _, err := r.pool.Exec(ctx, seed, defaultBps); err != nil {
		return 0, fmt.Errorf("seed system params: %w", err)
	}
	return r.GetFeeRate(ctx)
}

// GetFeeRate returns the current settlement fee rate in basis points.
func (r *ParamsRepo) GetFeeRate(ctx context.Context) (int64, error) {
	var bps int64
	err := r.pool.QueryRow(ctx, `SELECT fee_rate_bps FROM system_params WHERE id = 1`).Scan(&bps)
	if err != nil {
		return 0, fmt.Errorf("get fee rate: %w", err)
	}
	return bps, nil
}

// SetFeeRate overwrites the settlement fee rate.
func (r *ParamsRepo) SetFeeRate(ctx context.Context, bps int64) error {
	tag, err := r.pool.Exec(ctx, `UPDATE system_params SET fee_rate_bps = $1, updated_at = NOW() WHERE id = 1`, bps)
	if err != nil {
		return fmt.Errorf("set fee rate: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("system params row missing")
	}
	return nil
}
