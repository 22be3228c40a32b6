package config

import (
	"flag"
	"time"
)

// parseFlags parses the global connection flags. Command-specific flags are
// handled by the CLI itself after flag.Args().
//
// Flags:
//
//	-url city hall api base url
//	-u user name to log in as
//	-p cleartext password
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
func parseFlags() *Config {
	var url string
	var user string
	var password string
	var jsonConfigPath string
	var requestTimeout time.Duration

	flag.StringVar(&url, "url", "", "City Hall API base URL")
	flag.StringVar(&user, "u", "", "User name")
	flag.StringVar(&password, "p", "", "Password")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	flag.Parse()

	return &Config{
		URL:            url,
		User:           user,
		Password:       password,
		RequestTimeout: requestTimeout,
		JSONFilePath:   jsonConfigPath,
	}
}
