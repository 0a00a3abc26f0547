package api

import (
	"os"
	"strconv"
)

// Config holds all configuration for talking to the portfolio backend.
type Config struct {
	BaseURL   string
	UploadURL string
	TimeoutMs int
	PageSize  int
	LogCalls  bool

	// ResizeMaxEdge caps the longest edge of uploaded images in pixels.
	// Zero uploads images at their original resolution.
	ResizeMaxEdge int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL:       "http://localhost:4000/api",
		UploadURL:     "http://localhost:4000/files",
		TimeoutMs:     30000,
		PageSize:      10,
		LogCalls:      false,
		ResizeMaxEdge: 1920,
	}
}

// LoadConfig reads API configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("FOLIO_API_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("FOLIO_UPLOAD_URL"); v != "" {
		cfg.UploadURL = v
	}
	if v := os.Getenv("FOLIO_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("FOLIO_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			cfg.PageSize = n
		}
	}
	if v := os.Getenv("FOLIO_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("FOLIO_RESIZE_MAX_EDGE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.ResizeMaxEdge = n
		}
	}

	return cfg
}
