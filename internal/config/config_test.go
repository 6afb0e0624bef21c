package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tej343/Document-Fraud-Detection/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "development", cfg.Server.Environment)

	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, "disable", cfg.DB.SSLMode)

	assert.Empty(t, cfg.Auth.ReviewKey)
	assert.Equal(t, 8*time.Hour, cfg.Auth.TokenExpiry)
	assert.Equal(t, "fraudcheck", cfg.Auth.Issuer)

	assert.False(t, cfg.S3.Enabled())
	assert.Equal(t, "corpus/", cfg.S3.Prefix)

	assert.Equal(t, int64(50), cfg.Review.MaxFileSizeMB)
	assert.Equal(t, 25.0, cfg.Review.AlertThreshold)
	assert.Equal(t, []string{"eng"}, cfg.Review.OCRLanguages)
	assert.Empty(t, cfg.Review.SuspiciousKeywords)

	assert.Equal(t, "noop", cfg.Alert.Provider)
	assert.Empty(t, cfg.Alert.ToAddress)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("FRAUDCHECK_SERVER_PORT", ":9999")
	t.Setenv("FRAUDCHECK_DB_HOST", "db.internal")
	t.Setenv("FRAUDCHECK_AUTH_REVIEW_KEY", "sesame")
	t.Setenv("FRAUDCHECK_S3_BUCKET", "corpus-bucket")
	t.Setenv("FRAUDCHECK_REVIEW_OCR_LANGUAGES", "eng,deu")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, "sesame", cfg.Auth.ReviewKey)
	assert.True(t, cfg.S3.Enabled())
	assert.Equal(t, []string{"eng", "deu"}, cfg.Review.OCRLanguages)
}

func TestLoad_PlatformPortFallback(t *testing.T) {
	t.Setenv("PORT", "7070")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Server.Port)
}

func TestDBConfig_DSN(t *testing.T) {
	d := config.DBConfig{
		Host: "localhost", Port: 5432, User: "u", Password: "p", Name: "db", SSLMode: "disable",
	}
	assert.Equal(t, "postgres://u:p@localhost:5432/db?sslmode=disable", d.DSN())
}
