package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "testdata-does-not-exist.env")
	t.Setenv("DB_DSN", "postgres://localhost/storefront")

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "X-User-ID", cfg.UserIDHeader)
	assert.True(t, cfg.TrustUserIDHeader)
	assert.Equal(t, 30*time.Minute, cfg.CacheCategoryTTL)
	assert.Equal(t, int32(20), cfg.DBMaxConns)
	assert.False(t, cfg.StorageEnabled())
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("CONFIG_FILE", "testdata-does-not-exist.env")
	t.Setenv("DB_DSN", "postgres://localhost/storefront")
	t.Setenv("USER_ID_HEADER", "X-Customer")
	t.Setenv("TRUST_USER_ID_HEADER", "false")
	t.Setenv("DB_MAX_CONNS", "7")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("CACHE_PRODUCT_TTL", "90s")
	t.Setenv("DB_MIN_CONNS", "not-a-number")

	cfg := LoadConfig()

	assert.Equal(t, "X-Customer", cfg.UserIDHeader)
	assert.False(t, cfg.TrustUserIDHeader)
	assert.Equal(t, int32(7), cfg.DBMaxConns)
	assert.Equal(t, int32(2), cfg.DBMinConns, "invalid value falls back to default")
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
	assert.Equal(t, 90*time.Second, cfg.CacheProductTTL)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			DBUrl:          "postgres://localhost/storefront",
			UserIDHeader:   "X-User-ID",
			DBMaxConns:     10,
			DBMinConns:     1,
			RateLimitRPS:   10,
			RateLimitBurst: 10,
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "missing dsn", mutate: func(c *Config) { c.DBUrl = "" }, wantErr: "DB_DSN"},
		{name: "empty identity header", mutate: func(c *Config) { c.UserIDHeader = "" }, wantErr: "USER_ID_HEADER"},
		{name: "min above max", mutate: func(c *Config) { c.DBMinConns = 20 }, wantErr: "DB_MIN_CONNS"},
		{name: "zero burst", mutate: func(c *Config) { c.RateLimitBurst = 0 }, wantErr: "RATE_LIMIT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestStorageEnabled(t *testing.T) {
	cfg := &Config{R2AccountID: "acc", R2AccessKeyID: "key", R2AccessKeySecret: "secret"}
	assert.False(t, cfg.StorageEnabled())
	cfg.R2BucketName = "media"
	assert.True(t, cfg.StorageEnabled())
}
