package indexer

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is the votewatch service configuration, read from the environment
// with the VOTEWATCH_ prefix.
type Config struct {
	ListenAddr   string        `envconfig:"LISTEN_ADDR" default:":8980"`
	DBPath       string        `envconfig:"DB_PATH" default:"votewatch.db"`
	EventLogPath string        `envconfig:"EVENT_LOG" default:"events.log"`
	PollInterval time.Duration `envconfig:"POLL_INTERVAL" default:"5s"`
}

// LoadConfig reads and validates the environment configuration.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("votewatch", &cfg); err != nil {
		return Config{}, fmt.Errorf("process environment: %w", err)
	}
	if cfg.PollInterval <= 0 {
		return Config{}, fmt.Errorf("poll interval must be positive, got %s", cfg.PollInterval)
	}
	return cfg, nil
}
