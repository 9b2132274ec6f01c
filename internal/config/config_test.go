package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SWIMMEET_PRIMARY.ENV", "local")
	t.Setenv("SWIMMEET_SERVER.PORT", "8080")
	t.Setenv("SWIMMEET_SERVER.READ_TIMEOUT", "30")
	t.Setenv("SWIMMEET_SERVER.WRITE_TIMEOUT", "30")
	t.Setenv("SWIMMEET_SERVER.IDLE_TIMEOUT", "60")
	t.Setenv("SWIMMEET_SERVER.CORS_ALLOWED_ORIGINS", "http://localhost:3000")
}

func TestLoadConfigMemoryDriver(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("SWIMMEET_DATABASE.DRIVER", "memory")
	t.Setenv("SWIMMEET_DATABASE.SEED_ON_START", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 30, cfg.Server.ReadTimeout)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.CORSAllowedOrigins)
	assert.True(t, cfg.Database.IsMemory())
	assert.True(t, cfg.Database.SeedOnStart)

	require.NotNil(t, cfg.Observability)
	assert.Equal(t, "swimmeet", cfg.Observability.ServiceName)
	assert.Equal(t, "local", cfg.Observability.Environment)
	assert.Equal(t, 100*time.Millisecond, cfg.Observability.Logging.SlowQueryThreshold)
}

func TestLoadConfigDefaultsToPostgres(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("SWIMMEET_DATABASE.HOST", "localhost")
	t.Setenv("SWIMMEET_DATABASE.PORT", "5432")
	t.Setenv("SWIMMEET_DATABASE.USER", "postgres")
	t.Setenv("SWIMMEET_DATABASE.NAME", "swimmeet")
	t.Setenv("SWIMMEET_DATABASE.SSL_MODE", "disable")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.False(t, cfg.Database.IsMemory())
	assert.Equal(t, 5432, cfg.Database.Port)
}

func TestLoadConfigPostgresRequiresConnection(t *testing.T) {
	setBaseEnv(t)

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
}

func TestLoadConfigRejectsUnknownDriver(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("SWIMMEET_DATABASE.DRIVER", "sqlite")

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestObservabilityValidate(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	require.NoError(t, cfg.Validate())

	cfg.Logging.Level = "verbose"
	assert.Error(t, cfg.Validate())

	cfg.Logging.Level = "info"
	cfg.Logging.SlowQueryThreshold = -time.Second
	assert.Error(t, cfg.Validate())
}

func TestGetLogLevel(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	cfg.Logging.Level = ""

	cfg.Environment = "production"
	assert.Equal(t, "info", cfg.GetLogLevel())

	cfg.Environment = "local"
	assert.Equal(t, "debug", cfg.GetLogLevel())

	cfg.Logging.Level = "warn"
	assert.Equal(t, "warn", cfg.GetLogLevel())
}

func TestHealthCheckEnabled(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	assert.True(t, cfg.HealthCheckEnabled("database"))
	assert.False(t, cfg.HealthCheckEnabled("kafka"))

	cfg.HealthChecks.Enabled = false
	assert.False(t, cfg.HealthCheckEnabled("database"))
}
