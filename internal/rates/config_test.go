package rates_test

import (
	"testing"

	"github.com/PriceIQ/PriceIQ-Backend/internal/rates"
)

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("RATES_MIN_RATE", "10")
	t.Setenv("RATES_MAX_RATE", "300")
	t.Setenv("RATES_BUCKET_WIDTH", "25")
	t.Setenv("RATES_LIMIT_MAX", "5")
	t.Setenv("RATES_AUTO_FLAG_THRESHOLD", "0.9")

	cfg := rates.LoadFromEnv()
	if cfg.MinRate != 10 || cfg.MaxRate != 300 {
		t.Errorf("expected rate bounds [10, 300], got [%v, %v]", cfg.MinRate, cfg.MaxRate)
	}
	if cfg.BucketWidth != 25 {
		t.Errorf("expected bucket width 25, got %v", cfg.BucketWidth)
	}
	if cfg.RateLimitMax != 5 {
		t.Errorf("expected rate limit max 5, got %d", cfg.RateLimitMax)
	}
	if cfg.AutoFlagThreshold != 0.9 {
		t.Errorf("expected threshold 0.9, got %v", cfg.AutoFlagThreshold)
	}
}

func TestLoadFromEnv_BadValuesFallBack(t *testing.T) {
	t.Setenv("RATES_MIN_RATE", "cheap")
	t.Setenv("RATES_LIMIT_MAX", "many")

	cfg := rates.LoadFromEnv()
	defaults := rates.DefaultConfig()
	if cfg.MinRate != defaults.MinRate {
		t.Errorf("unparseable min rate must keep the default, got %v", cfg.MinRate)
	}
	if cfg.RateLimitMax != defaults.RateLimitMax {
		t.Errorf("unparseable limit must keep the default, got %d", cfg.RateLimitMax)
	}
}

func TestConfigValidate(t *testing.T) {
	if err := rates.DefaultConfig().Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}

	bad := rates.DefaultConfig()
	bad.MaxRate = bad.MinRate
	if err := bad.Validate(); err == nil {
		t.Error("expected inverted rate bounds to fail validation")
	}

	bad = rates.DefaultConfig()
	bad.BucketWidth = 0
	if err := bad.Validate(); err == nil {
		t.Error("expected zero bucket width to fail validation")
	}

	bad = rates.DefaultConfig()
	bad.AutoFlagThreshold = 1.5
	if err := bad.Validate(); err == nil {
		t.Error("expected out-of-range threshold to fail validation")
	}
}
