package domain

import "time"

// Asset is a registry entry for an accepted fungible value type,
// tracking aggregate deposit/withdrawal volume.
type Asset struct {
	ID             AssetID   `json:"asset_id"`
	Supported      bool      `json:"supported"`
	TotalDeposited int64     `json:"total_deposited"`
	TotalWithdrawn int64     `json:"total_withdrawn"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// AssetStats is the read model for the stats query.
type AssetStats struct {
	AssetID        AssetID `json:"asset_id"`
	TotalDeposited int64   `json:"total_deposited"`
	TotalWithdrawn int64   `json:"total_withdrawn"`
	FeeRateBps     int64   `json:"fee_rate_bps"`
}
