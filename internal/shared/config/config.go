package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Raafet57/uae-payment-validator/internal/validation"
)

// Config holds application configuration.
type Config struct {
	Port            string
	CORSAllowOrigin []string
	Env             string

	// Regulatory thresholds, overridable per jurisdiction.
	HighValueThresholdAED  int64
	LEIThresholdAED        int64
	PenaltyPerViolationAED int64
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	return Config{
		Port:                   getEnv("PORT", "8080"),
		CORSAllowOrigin:        splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000,http://localhost:3001")),
		Env:                    normalizeEnv(getEnv("ENV", "dev")),
		HighValueThresholdAED:  getEnvInt64("UAE_HIGH_VALUE_THRESHOLD_AED", validation.DefaultHighValueThresholdAED),
		LEIThresholdAED:        getEnvInt64("UAE_LEI_THRESHOLD_AED", validation.DefaultLEIThresholdAED),
		PenaltyPerViolationAED: getEnvInt64("UAE_PENALTY_PER_VIOLATION_AED", validation.DefaultPenaltyPerViolationAED),
	}
}

// Limits converts the configured thresholds into engine limits.
func (c Config) Limits() validation.Limits {
	return validation.Limits{
		HighValueThresholdAED:  decimal.NewFromInt(c.HighValueThresholdAED),
		LEIThresholdAED:        decimal.NewFromInt(c.LEIThresholdAED),
		PenaltyPerViolationAED: decimal.NewFromInt(c.PenaltyPerViolationAED),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}
