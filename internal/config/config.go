package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	StageProd = "prod"
	StageDev  = "dev"
)

type Config struct {
	Stage       string `env:"STAGE" envDefault:"dev"`
	DatabaseURL string `env:"DATABASE_URL"`
	FleetPath   string `env:"FLEET_PATH"`
}

// Load reads .env outside of prod, then parses the environment.
func Load() (Config, error) {
	if os.Getenv("STAGE") != StageProd {
		if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("load .env: %w", err)
		}
	}
	return Parse()
}

func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.Stage != StageDev && cfg.Stage != StageProd {
		return Config{}, fmt.Errorf("invalid type of development stage: %s", cfg.Stage)
	}
	return cfg, nil
}

func (c Config) IsProd() bool {
	return c.Stage == StageProd
}

func (c Config) HasDatabase() bool {
	return c.DatabaseURL != ""
}
