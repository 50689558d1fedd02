package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/acquisitions/internal/common"
)

// DefaultBcryptCost is the work factor applied to new password hashes. Cost
// 10 keeps a single hash around 50-100ms on current hardware, expensive
// enough for offline attacks without starving concurrent requests.
const DefaultBcryptCost = 10

// PasswordHasher performs one-way hashing and verification of plaintext
// passwords. It does no I/O; the only side effect is CPU cost.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher creates a hasher with the given bcrypt cost. Costs
// outside bcrypt's valid range fall back to DefaultBcryptCost.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash returns the salted bcrypt hash of plaintext. Any plaintext is
// acceptable input; a non-nil error always means an internal failure.
func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", common.ErrHashing
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches the stored hash. A mismatch is
// (false, nil); an error is returned only when the stored hash itself is
// unusable.
func (h *PasswordHasher) Verify(plaintext, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, common.ErrHashing
}
