package shared

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadServerConfigDefaults(t *testing.T) {
	t.Setenv("SR_ADDR", "")
	t.Setenv("SR_LOG_LEVEL", "")
	t.Setenv("SR_STORE", "")

	cfg := LoadServerConfig(":8086")
	assert.Equal(t, ":8086", cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, BackendMemory, cfg.Backend)
	assert.Equal(t, 15*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 60*time.Second, cfg.IdleTimeout)
}

func TestLoadServerConfigOverrides(t *testing.T) {
	t.Setenv("SR_ADDR", ":9000")
	t.Setenv("SR_LOG_LEVEL", "debug")
	t.Setenv("SR_STORE", BackendSQLite)
	t.Setenv("SR_READ_TIMEOUT", "5")

	cfg := LoadServerConfig(":8086")
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, BackendSQLite, cfg.Backend)
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
}

func TestLoadServerConfigIgnoresBadTimeout(t *testing.T) {
	t.Setenv("SR_WRITE_TIMEOUT", "not-a-number")

	cfg := LoadServerConfig(":8086")
	assert.Equal(t, 15*time.Second, cfg.WriteTimeout)
}
