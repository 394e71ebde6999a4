package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("BCRYPT_COST", "")
	t.Setenv("MONGO_DATABASE", "")

	cfg := Load()
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, "blinkit", cfg.MongoDatabase)
	assert.Equal(t, "mongo", cfg.StoreDriver)
	assert.False(t, cfg.RateLimitEnabled)
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("BCRYPT_COST", "ten")
	t.Setenv("JWT_TTL", "soon")
	t.Setenv("RATE_LIMIT_ENABLED", "maybe")

	cfg := Load()
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.False(t, cfg.RateLimitEnabled)
}

func TestValidate(t *testing.T) {
	t.Run("development falls back to a fixed secret", func(t *testing.T) {
		cfg := &Config{Env: "development", JWTTTL: time.Hour, StoreDriver: "memory"}
		require.NoError(t, cfg.Validate())
		assert.Equal(t, devJWTSecret, cfg.JWTSecret)
	})

	t.Run("production requires a secret", func(t *testing.T) {
		cfg := &Config{Env: "production", JWTTTL: time.Hour, StoreDriver: "mongo"}
		assert.Error(t, cfg.Validate())
	})

	t.Run("unknown store driver", func(t *testing.T) {
		cfg := &Config{Env: "production", JWTSecret: "s", JWTTTL: time.Hour, StoreDriver: "sqlite"}
		assert.Error(t, cfg.Validate())
	})
}

func TestSplitList(t *testing.T) {
	cfg := &Config{CORSAllowedOrigins: " http://a.test , ,http://b.test"}
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins())
	assert.Empty(t, (&Config{}).ESAddrs())
}
