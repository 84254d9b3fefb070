package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// defaultImportBatchSize bounds how many rows a single import transaction
// writes when IMPORT_BATCH_SIZE is unset or unparseable.
const defaultImportBatchSize = 30

type Config struct {
	Port            string   `yaml:"port"`
	Environment     string   `yaml:"environment"`
	BaseURL         string   `yaml:"base_url"`
	DatabaseURL     string   `yaml:"database_url"`
	JWTSecret       string   `yaml:"jwt_secret"`
	TokenTTLSeconds int      `yaml:"token_ttl_seconds"`
	AllowedEmails   []string `yaml:"allowed_emails"` // empty means open signup
	ImportBatchSize int      `yaml:"import_batch_size"`
	CORSOrigins     string   `yaml:"cors_origins"`
}

// Load builds the configuration from the environment. When CONFIG_FILE
// points at a YAML file it is read first and the environment overrides it,
// so a deployment can check in a base file and keep secrets in env vars.
func Load() (*Config, error) {
	cfg := &Config{
		Port:            "8080",
		Environment:     "dev",
		BaseURL:         "http://localhost:8080",
		TokenTTLSeconds: 7200,
		ImportBatchSize: defaultImportBatchSize,
		CORSOrigins:     "*",
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.Environment = getEnv("ENVIRONMENT", cfg.Environment)
	cfg.BaseURL = getEnv("BASE_URL", cfg.BaseURL)
	cfg.DatabaseURL = getEnv("DATABASE_URL", cfg.DatabaseURL)
	cfg.JWTSecret = getEnv("JWT_SECRET", cfg.JWTSecret)
	cfg.CORSOrigins = getEnv("CORS_ORIGINS", cfg.CORSOrigins)
	cfg.TokenTTLSeconds = getEnvInt("TOKEN_TTL_SECONDS", cfg.TokenTTLSeconds)
	cfg.ImportBatchSize = getEnvInt("IMPORT_BATCH_SIZE", cfg.ImportBatchSize)

	if raw := os.Getenv("ALLOWED_EMAILS"); raw != "" {
		cfg.AllowedEmails = splitEmails(raw)
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func splitEmails(raw string) []string {
	var emails []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			emails = append(emails, trimmed)
		}
	}
	return emails
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return defaultValue
	}
	return n
}
