package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_FullConfig(t *testing.T) {
	t.Setenv("APP_VERSION", "1.4.0")
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:9090")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "45s")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://u:p@localhost:5432/reports?sslmode=disable")
	t.Setenv("REPORTS_MAX_PAGE_SKIP", "5000")
	t.Setenv("CONFIG", "/etc/feedback-portal/config.json")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "1.4.0", cfg.App.Version)
	assert.Equal(t, "0.0.0.0:9090", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "postgres://u:p@localhost:5432/reports?sslmode=disable", cfg.Storage.DB.DSN)
	assert.Equal(t, int64(5000), cfg.Reports.MaxPageSkip)
	assert.Equal(t, "/etc/feedback-portal/config.json", cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnvironment(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Empty(t, cfg.Server.HTTPAddress)
	assert.Zero(t, cfg.Reports.MaxPageSkip)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("SERVER_REQUEST_TIMEOUT", "not-a-duration")

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestValidate_AppliesDefaults(t *testing.T) {
	cfg := &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "postgres://localhost/reports"}},
	}

	require.NoError(t, cfg.validate())

	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultMaxPageSkip, cfg.Reports.MaxPageSkip)
}

func TestValidate_KeepsExplicitValues(t *testing.T) {
	cfg := &StructuredConfig{
		Server:  Server{HTTPAddress: "localhost:3000", RequestTimeout: time.Minute},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/reports"}},
		Reports: Reports{MaxPageSkip: 42},
	}

	require.NoError(t, cfg.validate())

	assert.Equal(t, "localhost:3000", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Minute, cfg.Server.RequestTimeout)
	assert.Equal(t, int64(42), cfg.Reports.MaxPageSkip)
}

func TestValidate_MissingDSN(t *testing.T) {
	cfg := &StructuredConfig{}

	err := cfg.validate()

	require.ErrorIs(t, err, errNoDatabaseDSN)
}
