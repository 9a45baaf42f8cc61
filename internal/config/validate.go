package config

import (
	"fmt"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

var validTerminators = map[string]bool{
	"": true, "lf": true, "cr": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if !validLogLevels[c.Server.LogLevel] {
		errs = append(errs, fmt.Sprintf("server.log_level: must be one of debug, info, warn, error; got %q", c.Server.LogLevel))
	}

	if !validTerminators[c.Scanner.Terminator] {
		errs = append(errs, fmt.Sprintf("scanner.terminator: must be lf or cr, got %q", c.Scanner.Terminator))
	}
	// 0 is fine here: Load replaces it with the default baud rate.
	if c.Scanner.BaudRate < 0 {
		errs = append(errs, fmt.Sprintf("scanner.baud_rate: must not be negative, got %d", c.Scanner.BaudRate))
	}

	if c.UPC.MaxAttempts < 1 {
		errs = append(errs, fmt.Sprintf("upc.max_attempts: must be at least 1, got %d", c.UPC.MaxAttempts))
	}

	if c.Radarr.URL != "" && c.Radarr.APIKey == "" {
		errs = append(errs, "radarr.api_key: required when radarr.url is set")
	}
	if c.Sonarr.URL != "" && c.Sonarr.APIKey == "" {
		errs = append(errs, "sonarr.api_key: required when sonarr.url is set")
	}
	if c.Radarr.URL == "" && c.Sonarr.URL == "" {
		errs = append(errs, "at least one provider (radarr or sonarr) must be configured")
	}

	return errs
}
