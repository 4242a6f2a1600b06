package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, GeneratorRandom, cfg.CodeGenerator)
	assert.Equal(t, 10000, cfg.CacheSize)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.False(t, cfg.InitSchema)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CODE_GENERATOR", GeneratorCounter)
	t.Setenv("CACHE_SIZE", "500")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("INIT_SCHEMA", "true")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, GeneratorCounter, cfg.CodeGenerator)
	assert.Equal(t, 500, cfg.CacheSize)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.True(t, cfg.InitSchema)
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("CACHE_SIZE", "lots")
	t.Setenv("CACHE_TTL", "soon")
	t.Setenv("INIT_SCHEMA", "yep")

	cfg := Load()

	assert.Equal(t, 10000, cfg.CacheSize)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.False(t, cfg.InitSchema)
}
