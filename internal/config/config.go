package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	Debug       bool   `envconfig:"DEBUG" default:"false"`
	Environment string `envconfig:"ENVIRONMENT" default:"development"`

	SentryDSN string `envconfig:"SENTRY_DSN"`

	// MaxBodyBytes caps the HTTP request body; MaxDocumentChars caps the
	// document content accepted for analysis.
	MaxBodyBytes     int64 `envconfig:"MAX_BODY_BYTES" default:"5242880"`
	MaxDocumentChars int   `envconfig:"MAX_DOCUMENT_CHARS" default:"2000000"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("CLAUSELENS", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return cfg
}

func (c *Config) HasSentry() bool {
	return c.SentryDSN != ""
}
