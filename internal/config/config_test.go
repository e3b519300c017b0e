package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	clearTestEnvVars()
	defer clearTestEnvVars()

	os.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, "http://localhost:8080", cfg.Server.PublicURL)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "3306", cfg.Database.Port)
	assert.Equal(t, "contentshop_db", cfg.Database.DatabaseName)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, 5, cfg.Database.MaxIdleConns)

	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, 24, cfg.Auth.TokenHours)

	// Payment and scoring stay disabled without their keys.
	assert.False(t, cfg.Payment.Enabled)
	assert.False(t, cfg.Scoring.Enabled)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	clearTestEnvVars()
	defer clearTestEnvVars()

	os.Setenv("JWT_SECRET", "test-secret")
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("DB_HOST", "db.internal")
	os.Setenv("DB_MAX_OPEN_CONNS", "50")
	os.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	os.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 50, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.Payment.Enabled)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_MissingJWTSecret(t *testing.T) {
	clearTestEnvVars()
	defer clearTestEnvVars()

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	clearTestEnvVars()
	defer clearTestEnvVars()

	os.Setenv("JWT_SECRET", "test-secret")
	os.Setenv("DB_MAX_OPEN_CONNS", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:         "localhost",
			Port:         "3306",
			Username:     "shop",
			Password:     "secret",
			DatabaseName: "shopdb",
		},
	}
	assert.Equal(t,
		"shop:secret@tcp(localhost:3306)/shopdb?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.DSN())
}

func clearTestEnvVars() {
	for _, key := range []string{
		"JWT_SECRET", "JWT_TOKEN_HOURS",
		"SERVER_PORT", "SERVER_HOST", "ENVIRONMENT", "PUBLIC_URL",
		"SERVER_READ_TIMEOUT", "SERVER_WRITE_TIMEOUT",
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
		"MONGO_URI", "MONGO_DB",
		"STRIPE_SECRET_KEY", "PAYMENT_CURRENCY",
		"OPENAI_API_KEY", "OPENAI_MODEL",
		"LOG_LEVEL", "LOG_FORMAT",
	} {
		os.Unsetenv(key)
	}
}
