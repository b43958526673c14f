package domain

import "time"

// Precommit binds a commit hash to the merchant that registered it and
// an expiry instant. Each entry is consumed at most once and honored
// only strictly before ExpiresAt.
type Precommit struct {
	CommitHash string    `json:"commit_hash"` // lowercase hex, 32-byte digest
	Merchant   Address   `json:"merchant"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// Expired reports whether the entry is no longer honored at now.
func (p *Precommit) Expired(now time.Time) bool {
	return now.After(p.ExpiresAt)
}
