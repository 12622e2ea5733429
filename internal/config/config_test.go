package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "STORE_BACKEND", "POINT_MAX_BALANCE", "POINT_CONSISTENT_READS", "RATE_RPS"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, BackendMemory, cfg.StoreBackend)
	assert.Equal(t, int64(5000), cfg.MaxBalance)
	assert.False(t, cfg.ConsistentReads)
	assert.Equal(t, 100, cfg.RateRPS)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORE_BACKEND", "Postgres")
	t.Setenv("POINT_MAX_BALANCE", "10000")
	t.Setenv("POINT_CONSISTENT_READS", "true")
	t.Setenv("WORKER_COUNT", "not-a-number")

	cfg := Load()

	assert.Equal(t, BackendPostgres, cfg.StoreBackend)
	assert.Equal(t, int64(10000), cfg.MaxBalance)
	assert.True(t, cfg.ConsistentReads)
	assert.Equal(t, 4, cfg.WorkerCount)
}
