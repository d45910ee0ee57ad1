package server

import (
	"errors"

	"github.com/caarlos0/env/v11"
)

// Config holds the daemon settings, read from the environment.
type Config struct {
	Addr        string `env:"VREGISTRY_ADDR" envDefault:":8080"`
	Name        string `env:"VREGISTRY_NAME" envDefault:"vregistryd"`
	LogLevel    string `env:"VREGISTRY_LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"VREGISTRY_LOG_FORMAT" envDefault:"text"`
	Manifest    string `env:"VREGISTRY_MANIFEST"` // optional JSON manifest path
	Preload     string `env:"VREGISTRY_PRELOAD"`  // e.g. "HexValidator,CharCount:Short=32"
	MaxBodySize int    `env:"VREGISTRY_MAX_BODY_SIZE" envDefault:"1048576"`
}

// LoadConfig parses Config from the process environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.New("VREGISTRY_ADDR is required and cannot be empty")
	}
	if c.MaxBodySize <= 0 {
		return errors.New("VREGISTRY_MAX_BODY_SIZE must be positive")
	}
	return nil
}
