package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PLACES_BASE_URL", "")
	t.Setenv("REQUEST_TIMEOUT_SEC", "")
	t.Setenv("PAGE_TOKEN_DELAY_MS", "")

	cfg := Load()
	if cfg.RequestTimeout() != 10*time.Second {
		t.Errorf("RequestTimeout: got %v, want 10s", cfg.RequestTimeout())
	}
	if cfg.PageTokenDelay() != 2*time.Second {
		t.Errorf("PageTokenDelay: got %v, want 2s", cfg.PageTokenDelay())
	}
	if cfg.PlacesBaseURL != "https://maps.googleapis.com/maps/api/place" {
		t.Errorf("PlacesBaseURL: got %q", cfg.PlacesBaseURL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PLACES_BASE_URL", "http://localhost:9999/place/")
	t.Setenv("PAGE_TOKEN_DELAY_MS", "5")
	t.Setenv("DEFAULT_LIMIT", "not-a-number")
	t.Setenv("RATING_BANDS", "STRICT")

	cfg := Load()
	if cfg.PlacesBaseURL != "http://localhost:9999/place" {
		t.Errorf("trailing slash should be trimmed, got %q", cfg.PlacesBaseURL)
	}
	if cfg.PageTokenDelay() != 5*time.Millisecond {
		t.Errorf("PageTokenDelay: got %v", cfg.PageTokenDelay())
	}
	if cfg.DefaultLimit != 60 {
		t.Errorf("invalid DEFAULT_LIMIT should fall back to 60, got %d", cfg.DefaultLimit)
	}
	if cfg.RatingBands != "strict" {
		t.Errorf("RatingBands: got %q", cfg.RatingBands)
	}
}
