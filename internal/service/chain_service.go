package service

import (
	"bytes"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/binary"
	"encoding/hex"

	"offpay/internal/core/domain"
)

// HashChainService implements ports.ChainAuthorizer.
//
// A holder's tail is the lowercase hex encoding of SHA-256(secret) for a
// secret known only to the holder's offline device. Redemption reveals
// the secret; verification recomputes the hex digest and requires
// byte-exact equality with the stored tail.
//
// The commit hash binds (payer, recipient, amount, secret, asset) with a
// fixed-order canonical serialization: byte strings are length-prefixed
// with a u64 little-endian count, amounts are encoded as u64
// little-endian. The same derivation runs at precommit and completion,
// so the two phases agree bit-exactly.
type HashChainService struct {
	mode domain.ChainMode
}

// NewHashChainService creates the authorizer for the configured chain mode.
func NewHashChainService(mode domain.ChainMode) *HashChainService {
	return &HashChainService{mode: mode}
}

// TailFromSecret returns the commitment for a secret.
func (s *HashChainService) TailFromSecret(secret []byte) string {
	sum := sha256.Sum256(secret)
	return hex.EncodeToString(sum[:])
}

// Verify reports whether secret is the preimage of tail.
// An empty tail means no active voucher and never verifies.
func (s *HashChainService) Verify(tail string, secret []byte) bool {
	if tail == "" {
		return false
	}
	expected := s.TailFromSecret(secret)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(tail)) == 1
}

// NextTail returns the tail stored after a successful settlement.
// Legacy mode keeps the raw revealed secret (the chain link is consumed
// and the holder must refresh before the next payment); clear mode
// empties the tail so the mandatory refresh is explicit.
func (s *HashChainService) NextTail(secret []byte) string {
	if s.mode == domain.ChainModeClear {
		return ""
	}
	return string(secret)
}

// CommitHash derives the lowercase hex commit hash for a payment binding.
func (s *HashChainService) CommitHash(payer, recipient domain.Address, amount int64, secret []byte, asset domain.AssetID) string {
	var buf bytes.Buffer
	writeLenPrefixed(&buf, []byte(payer))
	writeLenPrefixed(&buf, []byte(recipient))
	writeU64(&buf, uint64(amount))
	writeLenPrefixed(&buf, secret)
	writeLenPrefixed(&buf, []byte(asset))

	sum := sha256.Sum256(buf.Bytes())
	return hex.EncodeToString(sum[:])
}

func writeU64(buf *bytes.Buffer, v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	buf.Write(b[:])
}

func writeLenPrefixed(buf *bytes.Buffer, b []byte) {
	writeU64(buf, uint64(len(b)))
	buf.Write(b)
}
