package config

import (
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, want nil", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("YTEXPORT_API_KEY", "yt-key")
	t.Setenv("YTEXPORT_OPENAI_API_KEY", "oa-key")
	t.Setenv("YTEXPORT_PLAYLIST_ID", "PLenv")
	t.Setenv("YTEXPORT_PAGE_SIZE", "25")
	t.Setenv("YTEXPORT_MAX_RETRIES", "7")
	t.Setenv("YTEXPORT_INITIAL_BACKOFF", "250ms")
	t.Setenv("YTEXPORT_TRANSCRIPT_LANG", "ko")

	cfg := DefaultConfig()
	cfg.loadFromEnv()

	if cfg.APIKey != "yt-key" {
		t.Errorf("APIKey = %q", cfg.APIKey)
	}
	if cfg.OpenAIAPIKey != "oa-key" {
		t.Errorf("OpenAIAPIKey = %q", cfg.OpenAIAPIKey)
	}
	if cfg.DefaultPlaylistID != "PLenv" {
		t.Errorf("DefaultPlaylistID = %q", cfg.DefaultPlaylistID)
	}
	if cfg.PageSize != 25 {
		t.Errorf("PageSize = %d", cfg.PageSize)
	}
	if cfg.MaxRetries != 7 {
		t.Errorf("MaxRetries = %d", cfg.MaxRetries)
	}
	if cfg.InitialBackoff != 250*time.Millisecond {
		t.Errorf("InitialBackoff = %v", cfg.InitialBackoff)
	}
	if cfg.TranscriptLang != "ko" {
		t.Errorf("TranscriptLang = %q", cfg.TranscriptLang)
	}
}

func TestLoadFromEnvPlainKeyNames(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "plain-yt")
	t.Setenv("OPENAI_API_KEY", "plain-oa")

	cfg := DefaultConfig()
	cfg.loadFromEnv()

	if cfg.APIKey != "plain-yt" {
		t.Errorf("APIKey = %q", cfg.APIKey)
	}
	if cfg.OpenAIAPIKey != "plain-oa" {
		t.Errorf("OpenAIAPIKey = %q", cfg.OpenAIAPIKey)
	}
}

func TestLoadFromEnvPrefixedWins(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "plain")
	t.Setenv("YTEXPORT_API_KEY", "prefixed")

	cfg := DefaultConfig()
	cfg.loadFromEnv()

	if cfg.APIKey != "prefixed" {
		t.Errorf("APIKey = %q, want the YTEXPORT_ name to win", cfg.APIKey)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"page size zero", func(c *Config) { c.PageSize = 0 }, true},
		{"page size over api cap", func(c *Config) { c.PageSize = 51 }, true},
		{"negative max pages", func(c *Config) { c.MaxPages = -1 }, true},
		{"negative max items", func(c *Config) { c.MaxItems = -1 }, true},
		{"negative retries", func(c *Config) { c.MaxRetries = -1 }, true},
		{"zero retries allowed", func(c *Config) { c.MaxRetries = 0 }, false},
		{"zero initial backoff", func(c *Config) { c.InitialBackoff = 0 }, true},
		{"max backoff below initial", func(c *Config) { c.MaxBackoff = time.Millisecond }, true},
		{"multiplier of one", func(c *Config) { c.BackoffMultiplier = 1.0 }, true},
		{"zero fetch timeout", func(c *Config) { c.FetchTimeout = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
