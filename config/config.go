// Package config manages application configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all application configuration for playlist export runs.
// Priority: command-line flags > environment variables > config file >
// defaults.
type Config struct {
	// APIKey is the YouTube Data API key.
	APIKey string `json:"api_key"`
	// OpenAIAPIKey authenticates summary generation. Only needed when
	// summaries are requested.
	OpenAIAPIKey string `json:"openai_api_key"`

	// DefaultPlaylistID is used when no playlist is given on the
	// command line.
	DefaultPlaylistID string `json:"default_playlist_id"`

	// PageSize is the number of playlist items requested per page
	// (the API caps this at 50).
	PageSize int64 `json:"page_size"`
	// MaxPages stops enumeration after this many pages (0 = all).
	MaxPages int `json:"max_pages"`
	// MaxItems stops enumeration after this many items (0 = all).
	MaxItems int `json:"max_items"`

	// MaxRetries is the per-page retry budget for transient failures.
	MaxRetries int `json:"max_retries"`
	// InitialBackoff is the delay before the first retry.
	InitialBackoff time.Duration `json:"initial_backoff"`
	// MaxBackoff caps the delay between retries.
	MaxBackoff time.Duration `json:"max_backoff"`
	// BackoffMultiplier is the exponential backoff multiplier (must be > 1).
	BackoffMultiplier float64 `json:"backoff_multiplier"`

	// FetchTimeout bounds a whole export run.
	FetchTimeout time.Duration `json:"fetch_timeout"`

	// TranscriptLang is the preferred caption language; English is the
	// fallback when a video has no track in it.
	TranscriptLang string `json:"transcript_lang"`
	// SummaryModel is the chat model used for summaries.
	SummaryModel string `json:"summary_model"`

	// TranscriptDir receives per-video transcript text files.
	TranscriptDir string `json:"transcript_dir"`
	// SummaryDir receives per-video summary text files.
	SummaryDir string `json:"summary_dir"`
}

// DefaultConfig returns configuration with safe defaults.
func DefaultConfig() *Config {
	return &Config{
		PageSize:          50,
		MaxRetries:        3,
		InitialBackoff:    1 * time.Second,
		MaxBackoff:        30 * time.Second,
		BackoffMultiplier: 2.0,
		FetchTimeout:      10 * time.Minute,
		TranscriptLang:    "en",
		TranscriptDir:     "transcripts",
		SummaryDir:        "summaries",
	}
}

// Load loads configuration from the config file and environment
// variables, then validates it.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	if err := cfg.loadFromFile(); err != nil {
		// Config file is optional
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	cfg.loadFromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFromFile attempts to load config from ytexport.json in the current
// directory or the user config directory.
func (c *Config) loadFromFile() error {
	paths := []string{
		"ytexport.json",
		filepath.Join(os.Getenv("HOME"), ".config", "ytexport", "ytexport.json"),
	}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return err
		}

		if err := json.Unmarshal(data, c); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		return nil
	}

	return os.ErrNotExist
}

// loadFromEnv overrides config with environment variables. The plain
// YOUTUBE_API_KEY and OPENAI_API_KEY names are honored as a convenience.
func (c *Config) loadFromEnv() {
	if v := os.Getenv("YTEXPORT_API_KEY"); v != "" {
		c.APIKey = v
	} else if v := os.Getenv("YOUTUBE_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("YTEXPORT_OPENAI_API_KEY"); v != "" {
		c.OpenAIAPIKey = v
	} else if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		c.OpenAIAPIKey = v
	}
	if v := os.Getenv("YTEXPORT_PLAYLIST_ID"); v != "" {
		c.DefaultPlaylistID = v
	}
	if v := os.Getenv("YTEXPORT_PAGE_SIZE"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.PageSize = n
		}
	}
	if v := os.Getenv("YTEXPORT_MAX_PAGES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxPages = n
		}
	}
	if v := os.Getenv("YTEXPORT_MAX_ITEMS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxItems = n
		}
	}
	if v := os.Getenv("YTEXPORT_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxRetries = n
		}
	}
	if v := os.Getenv("YTEXPORT_INITIAL_BACKOFF"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.InitialBackoff = d
		}
	}
	if v := os.Getenv("YTEXPORT_MAX_BACKOFF"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.MaxBackoff = d
		}
	}
	if v := os.Getenv("YTEXPORT_FETCH_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.FetchTimeout = d
		}
	}
	if v := os.Getenv("YTEXPORT_TRANSCRIPT_LANG"); v != "" {
		c.TranscriptLang = v
	}
	if v := os.Getenv("YTEXPORT_SUMMARY_MODEL"); v != "" {
		c.SummaryModel = v
	}
}

// Validate checks that configuration values are valid and consistent.
func (c *Config) Validate() error {
	if c.PageSize < 1 || c.PageSize > 50 {
		return fmt.Errorf("page_size must be between 1 and 50")
	}
	if c.MaxPages < 0 {
		return fmt.Errorf("max_pages must be non-negative")
	}
	if c.MaxItems < 0 {
		return fmt.Errorf("max_items must be non-negative")
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("max_retries must be non-negative")
	}
	if c.InitialBackoff <= 0 {
		return fmt.Errorf("initial_backoff must be positive")
	}
	if c.MaxBackoff < c.InitialBackoff {
		return fmt.Errorf("max_backoff must be >= initial_backoff")
	}
	if c.BackoffMultiplier <= 1 {
		return fmt.Errorf("backoff_multiplier must be > 1")
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("fetch_timeout must be positive")
	}
	return nil
}
