package service

import (
	"context"
	"fmt"

	"offpay/internal/core/domain"
	"offpay/internal/core/ports"
	"offpay/pkg/apperror"

	"github.com/rs/zerolog"
)

// AssetServiceImpl implements ports.AssetService. Mutations are
// restricted to the configured admin address.
type AssetServiceImpl struct {
	assets ports.AssetRepository
	params ports.ParamsRepository
	clock  ports.Clock
	admin  domain.Address
	log    zerolog.Logger
}

// NewAssetService creates a new AssetServiceImpl.
func NewAssetService(
	assets ports.AssetRepository,
	params ports.ParamsRepository,
	clock ports.Clock,
	admin domain.Address,
	log zerolog.Logger,
) *AssetServiceImpl {
	return &AssetServiceImpl{
		assets: assets,
		params: params,
		clock:  clock,
		admin:  admin,
		log:    log,
	}
}

// AddAsset registers a new supported asset. Admin only.
func (s *AssetServiceImpl) AddAsset(ctx context.Context, caller domain.Address, id domain.AssetID) (*domain.Asset, error) {
	if caller != s.admin {
		return nil, apperror.ErrNotAdmin()
	}
	if id == "" {
		return nil, apperror.Validation("asset id required")
	}

	existing, err := s.assets.Get(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get asset: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrAlreadySupported()
	}

	now := s.clock.Now()
	asset := &domain.Asset{
		ID:        id,
		Supported: true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.assets.Create(ctx, asset); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create asset: %w", err))
	}

	s.log.Info().Str("asset", string(id)).Msg("asset registered")
	return asset, nil
}

// SetFeeRate updates the global settlement fee rate in basis points.
// Admin only; the rate is bounded to [0, 10000].
func (s *AssetServiceImpl) SetFeeRate(ctx context.Context, caller domain.Address, bps int64) error {
	if caller != s.admin {
		return apperror.ErrNotAdmin()
	}
	if bps < 0 || bps > 10000 {
		return apperror.ErrInvalidFeeRate()
	}
	if err := s.params.SetFeeRate(ctx, bps); err != nil {
		return apperror.InternalError(fmt.Errorf("set fee rate: %w", err))
	}
	s.log.Info().Int64("fee_rate_bps", bps).Msg("fee rate updated")
	return nil
}

// IsSupported reports whether an asset is registered and supported.
func (s *AssetServiceImpl) IsSupported(ctx context.Context, id domain.AssetID) (bool, error) {
	asset, err := s.assets.Get(ctx, id)
	if err != nil {
		return false, apperror.InternalError(fmt.Errorf("get asset: %w", err))
	}
	return asset != nil && asset.Supported, nil
}

// Stats returns the lifetime volume counters and current fee rate for
// a supported asset.
func (s *AssetServiceImpl) Stats(ctx context.Context, id domain.AssetID) (*domain.AssetStats, error) {
	asset, err := s.assets.Get(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get asset: %w", err))
	}
	if asset == nil || !asset.Supported {
		return nil, apperror.ErrAssetNotSupported()
	}
	feeRate, err := s.params.GetFeeRate(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get fee rate: %w", err))
	}
	return &domain.AssetStats{
		AssetID:        asset.ID,
		TotalDeposited: asset.TotalDeposited,
		TotalWithdrawn: asset.TotalWithdrawn,
		FeeRateBps:     feeRate,
	}, nil
}
