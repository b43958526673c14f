package domain

import "time"

// Address identifies a holder, merchant, or recipient.
type Address string

// AssetID identifies a supported fungible value type.
type AssetID string

// PoolAddress is the reserved owner of the custodial pool in the
// external accounts ledger.
const PoolAddress Address = "@pool"

// Account is a holder's ledger record. Balances live in a separate
// per-asset table; Tail is the current hash-chain authorization
// commitment (lowercase hex SHA-256, empty = no active voucher).
type Account struct {
	Address         Address   `json:"address"`
	Tail            string    `json:"tail"`
	PaymentLimit    int64     `json:"payment_limit"`     // 0 = unlimited
	TailUpdateCount int64     `json:"tail_update_count"` // lifetime tail replacements
	MaxTailUpdates  int64     `json:"max_tail_updates"`  // 0 = unlimited
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CanRefreshTail reports whether another tail update is permitted.
func (a *Account) CanRefreshTail() bool {
	return a.MaxTailUpdates == 0 || a.TailUpdateCount < a.MaxTailUpdates
}

// WithinPaymentLimit reports whether amount is allowed by the holder's limit.
func (a *Account) WithinPaymentLimit(amount int64) bool {
	return a.PaymentLimit == 0 || amount <= a.PaymentLimit
}
