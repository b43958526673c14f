package domain

import "time"

// FactKind classifies a recorded ledger event.
type FactKind string

const (
	FactDeposit     FactKind = "DEPOSIT"
	FactWithdraw    FactKind = "WITHDRAW"
	FactTailRefresh FactKind = "TAIL_REFRESH"
	FactPrecommit   FactKind = "PRECOMMIT"
	FactSettlement  FactKind = "SETTLEMENT"
)

// Fact is an append-only record of a state-changing operation, written
// in the same transaction as the mutation it describes.
type Fact struct {
	ID           int64     `json:"id"`
	Kind         FactKind  `json:"kind"`
	Actor        Address   `json:"actor"`
	Counterparty Address   `json:"counterparty,omitempty"`
	Asset        AssetID   `json:"asset_id,omitempty"`
	Amount       int64     `json:"amount,omitempty"`
	Fee          int64     `json:"fee,omitempty"`
	CommitHash   string    `json:"commit_hash,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
