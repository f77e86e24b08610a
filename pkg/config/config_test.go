package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "stockwatch", cfg.ServiceName)
	assert.Equal(t, "3000", cfg.Server.HTTPPort)
	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, 2, cfg.Stock.SafetyMarginDays)
	assert.Empty(t, cfg.Reorder.MessageTemplate)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := `
environment: production
server:
  http_port: "9000"
storage:
  driver: memory
stock:
  safety_margin_days: 4
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))

	t.Setenv("HTTP_PORT", "8082")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092")
	t.Setenv("REDIS_TTL", "90s")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "8082", cfg.Server.HTTPPort, "environment wins over the file")
	assert.Equal(t, "memory", cfg.Storage.Driver)
	assert.Equal(t, 4, cfg.Stock.SafetyMarginDays)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 90*time.Second, cfg.Redis.TTL)
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "mongo")

	_, err := Load(t.TempDir())
	assert.ErrorContains(t, err, "unknown storage driver")
}

func TestValidate(t *testing.T) {
	cfg := Config{Storage: StorageConfig{Driver: "sqlite"}}
	assert.Error(t, cfg.Validate())

	cfg.Storage.SQLitePath = "x.db"
	assert.NoError(t, cfg.Validate())

	cfg.Stock.SafetyMarginDays = -1
	assert.Error(t, cfg.Validate())
}
