package idgen

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomGenerate(t *testing.T) {
	gen := NewRandomGenerator()

	code, err := gen.Generate(context.Background())
	require.NoError(t, err)
	assert.Len(t, code, 6)
	assert.Regexp(t, "^[a-z0-9]{6}$", code)
}

func TestRandomGenerateUniqueness(t *testing.T) {
	gen := NewRandomGenerator()
	seen := make(map[string]bool)
	iterations := 1000

	for i := 0; i < iterations; i++ {
		code, err := gen.Generate(context.Background())
		require.NoError(t, err)
		assert.False(t, seen[code], "generated duplicate code: %s", code)
		seen[code] = true
	}

	assert.Len(t, seen, iterations)
}

func TestRandomGenerateCharacterDistribution(t *testing.T) {
	gen := NewRandomGenerator()
	charCounts := make(map[rune]int)

	for i := 0; i < 10000; i++ {
		code, err := gen.Generate(context.Background())
		require.NoError(t, err)
		for _, ch := range code {
			charCounts[ch]++
		}
	}

	assert.GreaterOrEqual(t, len(charCounts), 30,
		"should draw from the full base36 alphabet, got %d unique chars", len(charCounts))
}

func BenchmarkRandomGenerate(b *testing.B) {
	gen := NewRandomGenerator()
	ctx := context.Background()
	for i := 0; i < b.N; i++ {
		_, _ = gen.Generate(ctx)
	}
}
