// Package config assembles run configuration from defaults, a .env file and
// the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/ngmaloney/channel-cross/internal/database"
	"github.com/ngmaloney/channel-cross/internal/models"
	"github.com/ngmaloney/channel-cross/internal/stormglass"
)

// Santa Barbara Channel, mid-crossing
const (
	DefaultLatitude  = 34.4
	DefaultLongitude = -119.7
	DefaultDays      = 10
)

// Environment variables read by Load
const (
	EnvAPIKey  = "STORMGLASS_API_KEY"
	EnvBaseURL = "STORMGLASS_BASE_URL"
	EnvSource  = "STORMGLASS_SOURCE"
	EnvDBPath  = "CHANNEL_CROSS_DB"
	EnvLogPath = "CHANNEL_CROSS_LOG"
	EnvTZ      = "CHANNEL_CROSS_TZ"
	EnvMinWait = "CHANNEL_CROSS_MIN_REFRESH"
)

var ErrMissingAPIKey = errors.New("stormglass API key is required (set " + EnvAPIKey + ")")

// Config represents the application configuration
type Config struct {
	APIKey     string
	BaseURL    string
	Source     string
	Latitude   float64
	Longitude  float64
	Days       int
	TimeZone   string // IANA name; empty keeps the provider's offsets
	DBPath     string
	LogPath    string
	Debug      bool
	Plain      bool
	MinRefresh time.Duration
	Thresholds models.CrossingThresholds
}

// Default returns a configuration with every default filled in
func Default() *Config {
	return &Config{
		BaseURL:    stormglass.DefaultBaseURL,
		Source:     stormglass.DefaultSource,
		Latitude:   DefaultLatitude,
		Longitude:  DefaultLongitude,
		Days:       DefaultDays,
		DBPath:     database.DBPath(),
		LogPath:    filepath.Join("data", "channel-cross.log"),
		MinRefresh: time.Minute,
		Thresholds: models.DefaultThresholds(),
	}
}

// Load reads envFiles (default ".env") into the process environment, then
// builds a Config from defaults overridden by the environment. A missing env
// file is not an error.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	cfg := Default()
	cfg.APIKey = strings.TrimSpace(os.Getenv(EnvAPIKey))

	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(EnvSource); v != "" {
		cfg.Source = v
	}
	if v := os.Getenv(EnvDBPath); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv(EnvLogPath); v != "" {
		cfg.LogPath = v
	}
	if v := os.Getenv(EnvTZ); v != "" {
		cfg.TimeZone = v
	}
	if v := os.Getenv(EnvMinWait); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", EnvMinWait, err)
		}
		cfg.MinRefresh = d
	}

	return cfg, nil
}

// Validate checks the configuration for values the run cannot proceed without
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.Days <= 0 {
		return fmt.Errorf("forecast days must be positive, got %d", c.Days)
	}
	if c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("latitude out of range: %s", strconv.FormatFloat(c.Latitude, 'f', -1, 64))
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("longitude out of range: %s", strconv.FormatFloat(c.Longitude, 'f', -1, 64))
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves TimeZone. A nil location means "keep provider offsets".
func (c *Config) Location() (*time.Location, error) {
	if c.TimeZone == "" {
		return nil, nil
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("loading time zone %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

// Window returns the forecast request window starting at now
func (c *Config) Window(now time.Time) (time.Time, time.Time) {
	return now, now.AddDate(0, 0, c.Days)
}
