// Package password wraps bcrypt for one-way password hashing. Each hash
// carries its own random salt and cost, so the stored record is
// self-describing and verification needs no extra state.
package password

import "golang.org/x/crypto/bcrypt"

// MinCost is the lowest cost factor accepted; below this, offline
// brute-force becomes too cheap.
const MinCost = 10

// Hasher hashes and verifies passwords with a fixed cost factor.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher with the given bcrypt cost, raised to MinCost
// if the configured value is lower.
func NewHasher(cost int) *Hasher {
	if cost < MinCost {
		cost = MinCost
	}
	return &Hasher{cost: cost}
}

// Hash derives a salted hash record from the plaintext. A fresh salt is
// drawn on every call, so hashing the same plaintext twice yields
// different records.
func (h *Hasher) Hash(plaintext string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether plaintext matches the stored hash record. The
// comparison is constant-time inside bcrypt; mismatches and malformed
// records both return false, never an error.
func (h *Hasher) Verify(plaintext, hashRecord string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashRecord), []byte(plaintext)) == nil
}
