package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"offpay/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// PrecommitStore implements ports.PrecommitStore using Redis. Entries
// carry the validity window as their TTL, so expired precommits vanish
// on their own; the service still checks the stored expiry explicitly.
type PrecommitStore struct {
	client *goredis.Client
	prefix string
}

// NewPrecommitStore creates a new Redis-backed precommit store.
func NewPrecommitStore(client *goredis.Client) *PrecommitStore {
	return &PrecommitStore{
		client: client,
		prefix: "precommit:",
	}
}

type precommitPayload struct {
	Merchant  string    `json:"merchant"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Save registers a precommit under its commit hash. Saving an existing
// hash overwrites the entry and restarts the window.
func (s *PrecommitStore) Save(ctx context.Context, entry domain.Precommit, ttl time.Duration) error {
	payload, err := json.Marshal(precommitPayload{
		Merchant:  string(entry.Merchant),
		ExpiresAt: entry.ExpiresAt,
	})
	if err != nil {
		return fmt.Errorf("marshal precommit: %w", err)
	}

	if err := s.client.Set(ctx, s.prefix+entry.CommitHash, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis precommit set: %w", err)
	}
	return nil
}

// Consume removes and returns the entry for a commit hash in one atomic
// step (GETDEL), so concurrent settlements of the same hash see the
// entry at most once. Returns nil, nil when absent.
func (s *PrecommitStore) Consume(ctx context.Context, commitHash string) (*domain.Precommit, error) {
	val, err := s.client.GetDel(ctx, s.prefix+commitHash).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis precommit getdel: %w", err)
	}

	var payload precommitPayload
	if err := json.Unmarshal(val, &payload); err != nil {
		return nil, fmt.Errorf("unmarshal precommit: %w", err)
	}

	return &domain.Precommit{
		CommitHash: commitHash,
		Merchant:   domain.Address(payload.Merchant),
		ExpiresAt:  payload.ExpiresAt,
	}, nil
}
