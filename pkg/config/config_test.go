package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "kbikes-api", cfg.ServiceName)
	assert.Equal(t, "kbikes", cfg.DB.DBName)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 1*time.Hour, cfg.DB.ConnMaxLifetime)
	assert.Equal(t, logger.Info, cfg.DB.LogLevel)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_LOG_LEVEL", "silent")
	t.Setenv("SERVER_PORT", "9000")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "6543", cfg.DB.Port)
	assert.Equal(t, logger.Silent, cfg.DB.LogLevel)
	assert.Equal(t, "9000", cfg.Server.Port)
}

func TestGetDSN(t *testing.T) {
	cfg := DBConfig{
		Host: "db", Port: "5432", User: "kbikes", Password: "secret",
		DBName: "kbikes", SSLMode: "disable",
	}
	assert.Equal(t,
		"host=db port=5432 user=kbikes password=secret dbname=kbikes sslmode=disable",
		cfg.GetDSN())
}

func TestLogConfigFields(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Len(t, cfg.LogConfig(), 6)
}
