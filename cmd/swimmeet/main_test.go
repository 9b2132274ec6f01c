package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/deppfellow/swimmeet/internal/config"
	"github.com/deppfellow/swimmeet/internal/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemoryApp(out *bytes.Buffer) *app {
	return &app{
		cfg: &config.Config{
			Primary:       config.Primary{Env: "test"},
			Database:      config.DatabaseConfig{Driver: config.DriverMemory},
			Observability: config.DefaultObservabilityConfig(),
		},
		log:           zerolog.New(out),
		loggerService: &logger.LoggerService{},
	}
}

func TestSeedSkipsMemoryDriver(t *testing.T) {
	var out bytes.Buffer
	a := newMemoryApp(&out)

	require.NoError(t, a.seed(context.Background()))
	assert.Contains(t, out.String(), "nothing to seed")
	assert.NotContains(t, out.String(), "seed finished")
}

func TestMigrateSkipsMemoryDriver(t *testing.T) {
	var out bytes.Buffer
	a := newMemoryApp(&out)

	require.NoError(t, a.migrate(context.Background()))
	assert.Contains(t, out.String(), "nothing to migrate")
}

func TestEmailPreview(t *testing.T) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	require.NoError(t, runEmailPreview(cmd, nil))
	assert.Contains(t, out.String(), "Sevilla")

	assert.Error(t, runEmailPreview(cmd, []string{"missing"}))
}
