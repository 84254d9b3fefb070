package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost/vault")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("CONFIG_FILE", "")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 30, cfg.ImportBatchSize)
	assert.Equal(t, 7200, cfg.TokenTTLSeconds)
	assert.Nil(t, cfg.AllowedEmails)
}

func TestLoadRequiresSecrets(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestImportBatchSizeParsing(t *testing.T) {
	tests := []struct {
		value string
		want  int
	}{
		{value: "50", want: 50},
		{value: "0", want: 0},
		{value: "abc", want: 30},
		{value: "-5", want: 30},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv("IMPORT_BATCH_SIZE", tt.value)

			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.ImportBatchSize)
		})
	}
}

func TestAllowedEmailsParsing(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ALLOWED_EMAILS", "a@example.com, b@example.com ,, ")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, cfg.AllowedEmails)
}

func TestYAMLFileWithEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"port: \"9090\"\ndatabase_url: postgres://file/vault\njwt_secret: file-secret\nimport_batch_size: 10\n",
	), 0o600))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("PORT", "7070")

	cfg, err := Load()
	require.NoError(t, err)

	// The file provides the base, the environment wins where set.
	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, "postgres://file/vault", cfg.DatabaseURL)
	assert.Equal(t, "file-secret", cfg.JWTSecret)
	assert.Equal(t, 10, cfg.ImportBatchSize)
}
