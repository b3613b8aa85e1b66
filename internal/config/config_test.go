package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_PATH", "JWT_SECRET", "AUTH_ENABLED", "LOG_LEVEL", "DATA_SOURCE", "DATA_FILES", "DATA_DAYS", "CSV_HEADER", "LOCATION_RATE_LIMIT", "LOCATION_RATE_WINDOW"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, ":8080", cfg.Port)
	assert.Equal(t, "./data/carrier/carrier.db", cfg.DBPath)
	assert.True(t, cfg.AuthEnabled)
	assert.True(t, cfg.CSVHeader)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, SourceCSV, cfg.DataSource)
	assert.Empty(t, cfg.DataFiles)
	assert.Empty(t, cfg.DataDays)
	assert.Equal(t, 20, cfg.LocationRateLimit)
	assert.Equal(t, time.Second, cfg.LocationRateWindow)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", ":9090")
	t.Setenv("AUTH_ENABLED", "false")
	t.Setenv("DATA_SOURCE", "SQLite")
	t.Setenv("DATA_FILES", " a.csv, ,b.csv ")
	t.Setenv("DATA_DAYS", "mon,tue")
	t.Setenv("CSV_HEADER", "0")
	t.Setenv("LOCATION_RATE_LIMIT", "0")
	t.Setenv("LOCATION_RATE_WINDOW", "bogus")

	cfg := Load()
	assert.Equal(t, ":9090", cfg.Port)
	assert.False(t, cfg.AuthEnabled)
	assert.False(t, cfg.CSVHeader)
	assert.Equal(t, SourceSQLite, cfg.DataSource)
	assert.Equal(t, []string{"a.csv", "b.csv"}, cfg.DataFiles)
	assert.Equal(t, []string{"mon", "tue"}, cfg.DataDays)
	assert.Equal(t, 0, cfg.LocationRateLimit)
	assert.Equal(t, time.Second, cfg.LocationRateWindow)
}
