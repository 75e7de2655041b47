package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("AMIGO_ADDR", "")
	t.Setenv("AMIGO_DF_PROJECT", "")
	t.Setenv("AMIGO_RESOURCE_FEED_URL", "")
	t.Setenv("AMIGO_RESOURCE_FEED_INTERVAL_SECONDS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":5000" {
		t.Errorf("Addr = %q, want :5000", cfg.Addr)
	}
	if cfg.Project != "your-project" {
		t.Errorf("Project = %q, want your-project", cfg.Project)
	}
	if cfg.FeedURL != "" {
		t.Errorf("FeedURL = %q, want empty", cfg.FeedURL)
	}
	if cfg.FeedInterval != time.Hour {
		t.Errorf("FeedInterval = %s, want 1h", cfg.FeedInterval)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("AMIGO_ADDR", "127.0.0.1:8080")
	t.Setenv("AMIGO_DF_PROJECT", "amigo-prod")
	t.Setenv("AMIGO_RESOURCE_FEED_URL", "https://example.com/feed.xml")
	t.Setenv("AMIGO_RESOURCE_FEED_INTERVAL_SECONDS", "120")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != "127.0.0.1:8080" || cfg.Project != "amigo-prod" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.FeedInterval != 2*time.Minute {
		t.Errorf("FeedInterval = %s, want 2m", cfg.FeedInterval)
	}
}

func TestLoad_InvalidFeedInterval(t *testing.T) {
	for _, v := range []string{"abc", "0", "-5"} {
		t.Setenv("AMIGO_RESOURCE_FEED_INTERVAL_SECONDS", v)
		if _, err := Load(); err == nil {
			t.Errorf("Load accepted interval %q", v)
		}
	}
}

func TestIsDotEnvDisabled(t *testing.T) {
	cases := []struct {
		v    string
		want bool
	}{
		{"", false},
		{"1", false},
		{"true", false},
		{"0", true},
		{"false", true},
		{"off", true},
		{"No", true},
	}
	for _, tc := range cases {
		t.Setenv("AMIGO_DOTENV", tc.v)
		if got := IsDotEnvDisabled(); got != tc.want {
			t.Errorf("AMIGO_DOTENV=%q: disabled = %v, want %v", tc.v, got, tc.want)
		}
	}
}
