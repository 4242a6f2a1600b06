package idgen

import (
	"context"
	"math/rand/v2"
)

// base36Alphabet mirrors the digit set of a base-36 encoding (0-9, a-z).
const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// randomCodeLength is the length of auto-generated codes.
const randomCodeLength = 6

// RandomGenerator produces short random codes. It is stateless and cheap,
// suitable for calling repeatedly inside a collision-retry loop. Codes are
// not cryptographically strong; uniqueness is enforced by the store, not
// by the generator.
type RandomGenerator struct{}

// NewRandomGenerator returns a RandomGenerator.
func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{}
}

// Generate returns a 6-character base36 code. Each call is independent.
func (g *RandomGenerator) Generate(_ context.Context) (string, error) {
	b := make([]byte, randomCodeLength)
	for i := range b {
		b[i] = base36Alphabet[rand.IntN(len(base36Alphabet))]
	}
	return string(b), nil
}
