package idgen

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// counterKey is the Redis key holding the sequence counter.
const counterKey = "linkreg:code_seq"

// codeSpaceFloor is 62^5, the smallest value whose base62 encoding is six
// characters long. Offsetting the counter by it keeps every emitted code
// inside the 6-8 character code format.
const codeSpaceFloor = 916132832

// CounterGenerator produces short codes from a Redis-backed sequence.
// Unlike RandomGenerator it can never collide with itself, at the cost of
// emitting predictable, enumerable codes.
type CounterGenerator struct {
	redis *redis.Client
}

func NewCounterGenerator(redisClient *redis.Client) *CounterGenerator {
	return &CounterGenerator{redis: redisClient}
}

// Generate atomically advances the sequence and returns its base62 encoding.
func (g *CounterGenerator) Generate(ctx context.Context) (string, error) {
	val, err := g.redis.Incr(ctx, counterKey).Result()
	if err != nil {
		return "", fmt.Errorf("failed to increment counter: %w", err)
	}
	return Encode(codeSpaceFloor + uint64(val)), nil
}
