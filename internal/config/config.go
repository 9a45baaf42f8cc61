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
	Server     ServerConfig     `toml:"server"`
	Database   DatabaseConfig   `toml:"database"`
	Scanner    ScannerConfig    `toml:"scanner"`
	UPC        UPCConfig        `toml:"upc"`
	Radarr     ProviderConfig   `toml:"radarr"`
	Sonarr     ProviderConfig   `toml:"sonarr"`
	Resolution ResolutionConfig `toml:"resolution"`
}

type ServerConfig struct {
	LogLevel string `toml:"log_level"`
}

type DatabaseConfig struct {
	Path string `toml:"path"`
}

// ScannerConfig describes the hardware barcode scanner's serial port.
type ScannerConfig struct {
	Device     string `toml:"device"` // e.g. /dev/ttyUSB0; empty disables the device channel
	BaudRate   int    `toml:"baud_rate"`
	Terminator string `toml:"terminator"` // "lf" or "cr"
}

// TerminatorByte maps the configured terminator convention to its byte.
func (s ScannerConfig) TerminatorByte() byte {
	if s.Terminator == "cr" {
		return '\r'
	}
	return '\n'
}

// UPCConfig tunes the barcode directory client.
type UPCConfig struct {
	URL            string   `toml:"url"` // empty = production UPCitemdb
	MaxAttempts    int      `toml:"max_attempts"`
	RateLimitDelay Duration `toml:"rate_limit_delay"`
	TransportDelay Duration `toml:"transport_delay"`
}

// ProviderConfig describes one management service (Radarr or Sonarr).
type ProviderConfig struct {
	URL            string `toml:"url"`
	APIKey         string `toml:"api_key"`
	Root           string `toml:"root"`
	QualityProfile int    `toml:"quality_profile"`
}

type ResolutionConfig struct {
	ConfirmTTL Duration `toml:"confirm_ttl"`
}

// Duration parses TOML strings like "30m" or "5s".
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
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

	// Apply defaults
	if cfg.Server.LogLevel == "" {
		cfg.Server.LogLevel = "info"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "./data/discarr.db"
	}
	if cfg.Scanner.BaudRate == 0 {
		cfg.Scanner.BaudRate = 115200
	}
	if cfg.UPC.MaxAttempts == 0 {
		cfg.UPC.MaxAttempts = 3
	}
	if cfg.UPC.RateLimitDelay == 0 {
		cfg.UPC.RateLimitDelay = Duration(5 * time.Second)
	}
	if cfg.UPC.TransportDelay == 0 {
		cfg.UPC.TransportDelay = Duration(time.Second)
	}
	if cfg.Radarr.Root == "" {
		cfg.Radarr.Root = "/movies"
	}
	if cfg.Sonarr.Root == "" {
		cfg.Sonarr.Root = "/tv"
	}
	if cfg.Radarr.QualityProfile == 0 {
		cfg.Radarr.QualityProfile = 1
	}
	if cfg.Sonarr.QualityProfile == 0 {
		cfg.Sonarr.QualityProfile = 1
	}
	if cfg.Resolution.ConfirmTTL == 0 {
		cfg.Resolution.ConfirmTTL = Duration(30 * time.Minute)
	}

	return &cfg, nil
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
