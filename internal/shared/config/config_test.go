package config

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "ENV", "CORS_ALLOW_ORIGINS",
		"UAE_HIGH_VALUE_THRESHOLD_AED", "UAE_LEI_THRESHOLD_AED", "UAE_PENALTY_PER_VIOLATION_AED",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.Env != "dev" {
		t.Fatalf("expected dev env, got %q", cfg.Env)
	}
	if len(cfg.CORSAllowOrigin) != 2 {
		t.Fatalf("expected 2 default CORS origins, got %v", cfg.CORSAllowOrigin)
	}
	if cfg.HighValueThresholdAED != 500000 {
		t.Fatalf("expected default high-value threshold 500000, got %d", cfg.HighValueThresholdAED)
	}
	if cfg.LEIThresholdAED != 1000000 {
		t.Fatalf("expected default LEI threshold 1000000, got %d", cfg.LEIThresholdAED)
	}
	if cfg.PenaltyPerViolationAED != 1000 {
		t.Fatalf("expected default penalty 1000, got %d", cfg.PenaltyPerViolationAED)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "PROD")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://app.example.ae, https://ops.example.ae")
	t.Setenv("UAE_HIGH_VALUE_THRESHOLD_AED", "750000")
	t.Setenv("UAE_LEI_THRESHOLD_AED", "2000000")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Fatalf("expected port 9090, got %q", cfg.Port)
	}
	if cfg.Env != "production" {
		t.Fatalf("expected production, got %q", cfg.Env)
	}
	if len(cfg.CORSAllowOrigin) != 2 || cfg.CORSAllowOrigin[1] != "https://ops.example.ae" {
		t.Fatalf("unexpected CORS origins: %v", cfg.CORSAllowOrigin)
	}
	if cfg.HighValueThresholdAED != 750000 {
		t.Fatalf("expected 750000, got %d", cfg.HighValueThresholdAED)
	}
	if cfg.LEIThresholdAED != 2000000 {
		t.Fatalf("expected 2000000, got %d", cfg.LEIThresholdAED)
	}
}

func TestLoadRejectsNonPositiveThresholds(t *testing.T) {
	t.Setenv("UAE_HIGH_VALUE_THRESHOLD_AED", "-5")
	t.Setenv("UAE_LEI_THRESHOLD_AED", "not-a-number")
	t.Setenv("UAE_PENALTY_PER_VIOLATION_AED", "0")

	cfg := Load()

	if cfg.HighValueThresholdAED != 500000 {
		t.Fatalf("negative override must fall back, got %d", cfg.HighValueThresholdAED)
	}
	if cfg.LEIThresholdAED != 1000000 {
		t.Fatalf("garbage override must fall back, got %d", cfg.LEIThresholdAED)
	}
	if cfg.PenaltyPerViolationAED != 1000 {
		t.Fatalf("zero override must fall back, got %d", cfg.PenaltyPerViolationAED)
	}
}

func TestLimitsConversion(t *testing.T) {
	cfg := Config{
		HighValueThresholdAED:  750000,
		LEIThresholdAED:        2000000,
		PenaltyPerViolationAED: 1500,
	}

	limits := cfg.Limits()
	if !limits.HighValueThresholdAED.Equal(decimal.NewFromInt(750000)) {
		t.Fatalf("unexpected high-value threshold: %s", limits.HighValueThresholdAED)
	}
	if !limits.LEIThresholdAED.Equal(decimal.NewFromInt(2000000)) {
		t.Fatalf("unexpected LEI threshold: %s", limits.LEIThresholdAED)
	}
	if !limits.PenaltyPerViolationAED.Equal(decimal.NewFromInt(1500)) {
		t.Fatalf("unexpected penalty: %s", limits.PenaltyPerViolationAED)
	}
}
