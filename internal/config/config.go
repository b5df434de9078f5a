// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Server    ServerConfig    `toml:"server"`
	CORS      CORSConfig      `toml:"cors"`
	Providers ProvidersConfig `toml:"providers"`
	Fetch     FetchConfig     `toml:"fetch"`
}

type ServerConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	LogLevel string `toml:"log_level"`
}

type CORSConfig struct {
	Origins []string `toml:"origins"`
}

type ProvidersConfig struct {
	Consumet ConsumetConfig `toml:"consumet"`
	MangaDex MangaDexConfig `toml:"mangadex"`
}

type ConsumetConfig struct {
	URL string `toml:"url"`
}

type MangaDexConfig struct {
	URL        string `toml:"url"`
	UploadsURL string `toml:"uploads_url"`
}

// FetchConfig controls the upstream fetch client: how many attempts each
// call gets, the flat delay between attempts, and the per-attempt timeouts.
type FetchConfig struct {
	Attempts     int      `toml:"attempts"`
	Backoff      Duration `toml:"backoff"`
	Timeout      Duration `toml:"timeout"`
	CoverTimeout Duration `toml:"cover_timeout"`
}

// Duration wraps time.Duration so TOML files can use strings like "20s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// Load reads and parses the configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Substitute environment variables
	content := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Default returns a configuration with all defaults applied, used when no
// config file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 5000
	}
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = "info"
	}
	if len(c.CORS.Origins) == 0 {
		c.CORS.Origins = []string{"http://localhost:3000"}
	}
	if c.Providers.Consumet.URL == "" {
		c.Providers.Consumet.URL = "https://api.consumet.org"
	}
	if c.Providers.MangaDex.URL == "" {
		c.Providers.MangaDex.URL = "https://api.mangadex.org"
	}
	if c.Providers.MangaDex.UploadsURL == "" {
		c.Providers.MangaDex.UploadsURL = "https://uploads.mangadex.org"
	}
	if c.Fetch.Attempts == 0 {
		c.Fetch.Attempts = 2
	}
	if c.Fetch.Backoff.Duration == 0 {
		c.Fetch.Backoff.Duration = time.Second
	}
	if c.Fetch.Timeout.Duration == 0 {
		c.Fetch.Timeout.Duration = 20 * time.Second
	}
	if c.Fetch.CoverTimeout.Duration == 0 {
		c.Fetch.CoverTimeout.Duration = 10 * time.Second
	}
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

func substituteEnvVars(content string) string {
	return envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		varName := match[2 : len(match)-1] // Strip ${ and }
		if value, ok := os.LookupEnv(varName); ok {
			return value
		}
		return match // Leave unchanged if not found
	})
}
