package domain

import "time"

// ChainMode selects the tail transition applied after a settlement.
type ChainMode string

const (
	// ChainModeLegacy stores the raw revealed secret as the new tail,
	// replicating the source system: a second settlement fails until
	// the holder refreshes the tail.
	ChainModeLegacy ChainMode = "legacy"
	// ChainModeClear empties the tail after a settlement so the
	// mandatory refresh is explicit.
	ChainModeClear ChainMode = "clear"
)

// SystemParams is the singleton protocol state. Admin, paymaster and
// chain mode are fixed at initialization; the fee rate is admin-mutable.
type SystemParams struct {
	Admin      Address   `json:"admin"`
	Paymaster  Address   `json:"paymaster"`
	FeeRateBps int64     `json:"fee_rate_bps"` // 0..10000
	ChainMode  ChainMode `json:"chain_mode"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// FeeFor computes floor(amount * fee_rate / 10000). The split keeps the
// intermediate products small enough that amounts near the int64 range
// cannot overflow the multiplication.
func (p *SystemParams) FeeFor(amount int64) int64 {
	return amount/10000*p.FeeRateBps + amount%10000*p.FeeRateBps/10000
}
