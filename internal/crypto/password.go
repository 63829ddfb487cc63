package crypto

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// MinSecretLength is the shortest password accepted for hashing.
const MinSecretLength = 8

// ErrSecretTooShort is returned when a password is below MinSecretLength.
var ErrSecretTooShort = errors.New("crypto: secret below minimum length")

// Hasher derives and verifies bcrypt password hashes with a fixed cost.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher. Costs outside bcrypt's supported range fall back
// to the library default.
func NewHasher(cost int) Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return Hasher{cost: cost}
}

// Hash derives a salted hash from plaintext.
func (h Hasher) Hash(plain string) ([]byte, error) {
	if len(plain) < MinSecretLength {
		return nil, ErrSecretTooShort
	}
	return bcrypt.GenerateFromPassword([]byte(plain), h.cost)
}

// Compare reports whether plaintext matches the stored hash. A malformed hash
// compares as false rather than erroring.
func (h Hasher) Compare(hash []byte, plain string) bool {
	return bcrypt.CompareHashAndPassword(hash, []byte(plain)) == nil
}
