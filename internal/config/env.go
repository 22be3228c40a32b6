package config

import (
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var dotenvLoaded sync.Once

// parseEnv populates a Config from CITYHALL_* environment variables via the
// caarlos0/env tags on [Config]. A .env file in the working directory is
// loaded first if present; its absence is not an error.
func parseEnv() (*Config, error) {
	dotenvLoaded.Do(func() {
		_ = godotenv.Load()
	})

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	return cfg, nil
}
