package cfg

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_ENV", "test")
	t.Setenv("APP_PORT", "8080")
}

func TestLoad_Defaults(t *testing.T) {
	baseEnv(t)

	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test", c.AppEnv)
	assert.Equal(t, "8080", c.AppPort)
	assert.Equal(t, CacheDriverMemory, c.Cache.Driver)
	assert.Equal(t, 10*time.Minute, c.Cache.TTL())
	assert.Equal(t, 5*time.Second, c.Suggestions.TickInterval())
	assert.Equal(t, time.Minute, c.Suggestions.DefaultSnooze())
	assert.Equal(t, 2, c.Suggestions.MaxVisible)
	assert.Equal(t, 30*time.Minute, c.Suggestions.IdleTimeout())
	assert.Equal(t, int64(1), c.SnowflakeNodeID)
	assert.Equal(t, "quote-workspace", c.Observability.ServiceName)
	assert.False(t, c.Observability.Enabled())
	assert.False(t, c.Postgres.Enabled())
	assert.Equal(t, "file://db/migrations", c.Postgres.MigrationsPath)
	assert.Equal(t, 20.0, c.RateLimit.RPS)
	assert.Equal(t, 40, c.RateLimit.Burst)
}

func TestLoad_Redis(t *testing.T) {
	baseEnv(t)
	t.Setenv("CACHE_DRIVER", "redis")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_PORT", "6379")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "cache:6379", c.Redis.Addr())
}

func TestLoad_ReportsEveryProblem(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("APP_PORT", "")
	t.Setenv("CACHE_DRIVER", "redis")
	t.Setenv("CACHE_TTL_MINUTES", "ten")
	t.Setenv("RATE_LIMIT_RPS", "-1")

	_, err := Load()
	require.Error(t, err)

	for _, want := range []string{
		"missing env: APP_ENV",
		"missing env: APP_PORT",
		"missing env: REDIS_HOST",
		"missing env: REDIS_PORT",
		"conversion failed env: CACHE_TTL_MINUTES",
		"conversion failed env: RATE_LIMIT_RPS",
	} {
		assert.ErrorContains(t, err, want)
	}
}

func TestLoad_InvalidDriver(t *testing.T) {
	baseEnv(t)
	t.Setenv("CACHE_DRIVER", "memcached")

	_, err := Load()
	assert.ErrorContains(t, err, "CACHE_DRIVER")
}

func TestLoad_PostgresNeedsUserAndDB(t *testing.T) {
	baseEnv(t)
	t.Setenv("POSTGRES_HOST", "db")
	t.Setenv("POSTGRES_USER", "")
	t.Setenv("POSTGRES_DB", "")

	_, err := Load()
	assert.ErrorContains(t, err, "missing env: POSTGRES_USER")
	assert.ErrorContains(t, err, "missing env: POSTGRES_DB")

	t.Setenv("POSTGRES_USER", "quote")
	t.Setenv("POSTGRES_DB", "quotes")
	c, err := Load()
	require.NoError(t, err)
	assert.True(t, c.Postgres.Enabled())
	assert.Equal(t, "5432", c.Postgres.Port)
	assert.Equal(t, "disable", c.Postgres.SSLMode)
}
