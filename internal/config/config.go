// Package config loads runtime configuration from the environment, with
// optional .env files for local development.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Addr is the HTTP listen address.
	Addr string

	// Project is the Dialogflow project id used when formatting context
	// names.
	Project string

	// FeedURL, when set, points at an RSS/Atom feed of wellbeing articles
	// surfaced on the resources endpoint.
	FeedURL      string
	FeedInterval time.Duration
}

const (
	defaultAddr         = ":5000"
	defaultProject      = "your-project"
	defaultFeedInterval = time.Hour
)

// Load reads config from the environment, applying defaults for everything
// unset.
func Load() (Config, error) {
	addr := strings.TrimSpace(os.Getenv("AMIGO_ADDR"))
	if addr == "" {
		addr = defaultAddr
	}

	project := strings.TrimSpace(os.Getenv("AMIGO_DF_PROJECT"))
	if project == "" {
		project = defaultProject
	}

	feedInterval := defaultFeedInterval
	if v := strings.TrimSpace(os.Getenv("AMIGO_RESOURCE_FEED_INTERVAL_SECONDS")); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil || secs <= 0 {
			return Config{}, fmt.Errorf("invalid AMIGO_RESOURCE_FEED_INTERVAL_SECONDS: %q", v)
		}
		feedInterval = time.Duration(secs) * time.Second
	}

	return Config{
		Addr:         addr,
		Project:      project,
		FeedURL:      strings.TrimSpace(os.Getenv("AMIGO_RESOURCE_FEED_URL")),
		FeedInterval: feedInterval,
	}, nil
}

// LoadDotEnv loads .env.local and .env from the working directory. It only
// sets vars that are not already set, matching godotenv's behavior.
func LoadDotEnv(logPrefix string) {
	if IsDotEnvDisabled() {
		return
	}

	for _, p := range []string{".env.local", ".env"} {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			log.Fatalf("%s failed to load %s: %v", logPrefix, p, err)
		} else {
			log.Printf("%s loaded env from %s", logPrefix, p)
		}
	}
}

func IsDotEnvDisabled() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("AMIGO_DOTENV"))) {
	case "0", "false", "off", "no":
		return true
	default:
		return false
	}
}
