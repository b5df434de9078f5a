package config

import (
	"fmt"
	"net/url"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("server.port: must be between 1 and 65535, got %d", c.Server.Port))
	}
	if !validLogLevels[c.Server.LogLevel] {
		errs = append(errs, fmt.Sprintf("server.log_level: must be one of debug, info, warn, error; got %q", c.Server.LogLevel))
	}

	if len(c.CORS.Origins) == 0 {
		errs = append(errs, "cors.origins: at least one allowed origin must be configured")
	}

	for key, raw := range map[string]string{
		"providers.consumet.url":         c.Providers.Consumet.URL,
		"providers.mangadex.url":         c.Providers.MangaDex.URL,
		"providers.mangadex.uploads_url": c.Providers.MangaDex.UploadsURL,
	} {
		if raw == "" {
			errs = append(errs, fmt.Sprintf("%s: required", key))
			continue
		}
		if u, err := url.Parse(raw); err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Sprintf("%s: not a valid URL: %q", key, raw))
		}
	}

	if c.Fetch.Attempts < 1 {
		errs = append(errs, fmt.Sprintf("fetch.attempts: must be at least 1, got %d", c.Fetch.Attempts))
	}
	if c.Fetch.Backoff.Duration < 0 {
		errs = append(errs, "fetch.backoff: must not be negative")
	}
	if c.Fetch.Timeout.Duration <= 0 {
		errs = append(errs, "fetch.timeout: must be positive")
	}
	if c.Fetch.CoverTimeout.Duration <= 0 {
		errs = append(errs, "fetch.cover_timeout: must be positive")
	}

	return errs
}
