// SPDX-License-Identifier: Apache-2.0

// Package config resolves the City Hall connection settings (URL, user,
// password) for the cityhall CLI.
//
// Sources are merged in precedence order: command-line flags, then
// environment variables (with .env support), then an optional JSON file
// named by -config or CITYHALL_CONFIG, then defaults. The default user is
// the machine hostname with a blank password, mirroring what the service
// expects from unattended clients.
package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds everything needed to open a City Hall session.
type Config struct {
	// URL is the base URL of the City Hall API. Required.
	// Env: CITYHALL_URL
	URL string `env:"CITYHALL_URL" json:"url"`

	// User is the name to log in as. Defaults to the machine hostname.
	// Env: CITYHALL_USER
	User string `env:"CITYHALL_USER" json:"user"`

	// Password is the cleartext password; it is hashed before it travels.
	// Defaults to blank.
	// Env: CITYHALL_PASSWORD
	Password string `env:"CITYHALL_PASSWORD" json:"password"`

	// RequestTimeout bounds each request (e.g. "30s"). Zero means no
	// client-side timeout.
	// Env: CITYHALL_TIMEOUT
	RequestTimeout time.Duration `env:"CITYHALL_TIMEOUT" json:"request_timeout"`

	// JSONFilePath points at an optional JSON config file. Only consulted
	// while building; not itself part of the connection settings.
	// Env: CITYHALL_CONFIG
	JSONFilePath string `env:"CITYHALL_CONFIG" json:"-"`
}

// Load builds the final configuration from all sources.
func Load() (*Config, error) {
	cfg, err := newConfigBuilder().
		withFlags().
		withEnv().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error building config: %w", err)
	}

	return cfg, cfg.validate()
}

func (cfg *Config) validate() error {
	if cfg.URL == "" {
		return ErrMissingConfig
	}
	return nil
}

func defaults() *Config {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = ""
	}

	return &Config{
		User:     hostname,
		Password: "",
	}
}
