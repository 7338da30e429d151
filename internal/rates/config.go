package rates

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the tunables of the aggregation core.
type Config struct {
	// Plausible bounds for a submitted hourly rate (USD).
	MinRate float64
	MaxRate float64

	// Ceiling for the optional years-of-experience field.
	MaxYearsExperience int

	// Histogram bucket width (USD) for the distribution view.
	BucketWidth float64

	// Fraud scoring: submissions from one origin inside RateLimitWindow
	// beyond RateLimitMax raise the score.
	RateLimitMax    int
	RateLimitWindow time.Duration

	// Minimum approved sample size before the statistical-outlier heuristic
	// trusts the skill's distribution.
	OutlierMinSamples int

	// Scores at or above this mark the submission for priority review. The
	// submission is still stored; visibility is moderation's call alone.
	AutoFlagThreshold float64

	// Default number of locations in the geo ranking.
	GeoTopN int
}

// DefaultConfig mirrors the bounds enforced by the submission form.
func DefaultConfig() Config {
	return Config{
		MinRate:            5,
		MaxRate:            500,
		MaxYearsExperience: 60,
		BucketWidth:        20,
		RateLimitMax:       3,
		RateLimitWindow:    24 * time.Hour,
		OutlierMinSamples:  8,
		AutoFlagThreshold:  0.8,
		GeoTopN:            5,
	}
}

// LoadFromEnv loads the core configuration, falling back to defaults.
//
// Environment variables:
//   - RATES_MIN_RATE, RATES_MAX_RATE: plausible hourly-rate bounds
//   - RATES_BUCKET_WIDTH: histogram bucket width in dollars
//   - RATES_LIMIT_MAX: submissions per origin per 24h before fraud penalty
//   - RATES_AUTO_FLAG_THRESHOLD: fraud score that marks priority review
func LoadFromEnv() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("RATES_MIN_RATE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.MinRate = f
		}
	}
	if v := os.Getenv("RATES_MAX_RATE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.MaxRate = f
		}
	}
	if v := os.Getenv("RATES_BUCKET_WIDTH"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.BucketWidth = f
		}
	}
	if v := os.Getenv("RATES_LIMIT_MAX"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.RateLimitMax = n
		}
	}
	if v := os.Getenv("RATES_AUTO_FLAG_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.AutoFlagThreshold = f
		}
	}

	return cfg
}

// Validate checks that the configuration is internally consistent.
func (c Config) Validate() error {
	if c.MinRate <= 0 || c.MaxRate <= c.MinRate {
		return fmt.Errorf("invalid rate bounds [%v, %v]", c.MinRate, c.MaxRate)
	}
	if c.BucketWidth <= 0 {
		return fmt.Errorf("bucket width must be positive, got %v", c.BucketWidth)
	}
	if c.RateLimitMax < 1 {
		return fmt.Errorf("rate limit max must be at least 1, got %d", c.RateLimitMax)
	}
	if c.AutoFlagThreshold <= 0 || c.AutoFlagThreshold > 1 {
		return fmt.Errorf("auto-flag threshold must be in (0, 1], got %v", c.AutoFlagThreshold)
	}
	return nil
}
