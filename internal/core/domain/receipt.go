package domain

import "time"

// DepositReceipt is returned by a successful deposit.
type DepositReceipt struct {
	Holder      Address   `json:"holder"`
	Asset       AssetID   `json:"asset_id"`
	Amount      int64     `json:"amount"`
	NewBalance  int64     `json:"new_balance"`
	TailUpdated bool      `json:"tail_updated"`
	ProcessedAt time.Time `json:"processed_at"`
}

// WithdrawReceipt is returned by a successful withdrawal.
type WithdrawReceipt struct {
	Holder      Address   `json:"holder"`
	Asset       AssetID   `json:"asset_id"`
	Amount      int64     `json:"amount"`
	NewBalance  int64     `json:"new_balance"`
	ProcessedAt time.Time `json:"processed_at"`
}

// PrecommitReceipt is returned by a successful merchant precommit.
type PrecommitReceipt struct {
	CommitHash string    `json:"commit_hash"`
	Merchant   Address   `json:"merchant"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// SettlementReceipt is returned by a successful payment completion.
type SettlementReceipt struct {
	Payer           Address   `json:"payer"`
	Recipient       Address   `json:"recipient"`
	Asset           AssetID   `json:"asset_id"`
	Amount          int64     `json:"amount"`
	Fee             int64     `json:"fee"`
	RecipientAmount int64     `json:"recipient_amount"`
	CommitHash      string    `json:"commit_hash,omitempty"` // empty on the paymaster path
	ProcessedAt     time.Time `json:"processed_at"`
}

// AccountLimits is the read model for the limits query.
type AccountLimits struct {
	PaymentLimit    int64 `json:"payment_limit"`
	TailUpdateCount int64 `json:"tail_update_count"`
	MaxTailUpdates  int64 `json:"max_tail_updates"`
}
