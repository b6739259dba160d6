package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// Skin selects which product skin the application presents
const (
	SkinKnowledge = "knowledge"
	SkinStocks    = "stocks"
)

// Config represents the application configuration
type Config struct {
	Environment string            `toml:"environment"` // "development" or "production"
	App         AppConfig         `toml:"app"`
	Storage     StorageConfig     `toml:"storage"`
	Logging     LoggingConfig     `toml:"logging"`
	Interaction InteractionConfig `toml:"interaction"`
	Pricing     PricingConfig     `toml:"pricing"`
	Saved       SavedConfig       `toml:"saved"`
	Refresh     RefreshConfig     `toml:"refresh"`
}

// AppConfig selects the product skin
type AppConfig struct {
	Skin string `toml:"skin" validate:"oneof=knowledge stocks"`
}

type StorageConfig struct {
	Badger BadgerConfig `toml:"badger"`
}

// BadgerConfig represents BadgerDB-specific configuration
type BadgerConfig struct {
	Path           string `toml:"path"`             // Database directory path
	ResetOnStartup bool   `toml:"reset_on_startup"` // Delete database on startup for clean test runs
}

type LoggingConfig struct {
	Level      string   `toml:"level"`       // "debug", "info", "warn", "error"
	Output     []string `toml:"output"`      // "stdout", "file"
	TimeFormat string   `toml:"time_format"` // Time format for logs
}

// InteractionConfig carries the gesture tuning constants. These are
// configuration, not derived values; behavioral parity depends on them.
type InteractionConfig struct {
	SwipeThreshold    float64 `toml:"swipe_threshold" validate:"gt=0"`    // px drag distance to commit
	VelocityThreshold float64 `toml:"velocity_threshold" validate:"gt=0"` // px/s release velocity to commit
	FlyDistance       float64 `toml:"fly_distance" validate:"gt=0"`       // px fly-away distance on commit
	MaxTilt           float64 `toml:"max_tilt"`                           // degrees at 2x threshold
	OverlayMax        float64 `toml:"overlay_max"`                        // overlay opacity at threshold
	VerticalDamping   float64 `toml:"vertical_damping"`                   // vertical drag multiplier
	CommitMs          int     `toml:"commit_ms"`                          // fly-away duration
	FadeMs            int     `toml:"fade_ms"`                            // opacity fade duration
	FlipMs            int     `toml:"flip_ms"`                            // flip rotation duration
	TapMaxMs          int     `toml:"tap_max_ms"`                         // longest press still counted as a tap
	SnackbarMs        int     `toml:"snackbar_ms"`                        // notification auto-dismiss delay
}

// PricingConfig controls the synthetic price series generator
type PricingConfig struct {
	HistoryDays      int    `toml:"history_days" validate:"gt=0"`
	AnchorDate       string `toml:"anchor_date" validate:"required"` // ISO date the series ends on
	DefaultTimeframe string `toml:"default_timeframe" validate:"oneof=1W 1M 3M"`
}

// SavedConfig controls the persisted notes/watchlist collections
type SavedConfig struct {
	MaxEntries int `toml:"max_entries" validate:"gt=0"`
}

// RefreshConfig controls the scheduled daily refresh
type RefreshConfig struct {
	Enabled  bool   `toml:"enabled"`
	Schedule string `toml:"schedule"` // cron expression
}

// DefaultConfig returns the built-in defaults, matching the constants the
// interaction core was tuned against.
func DefaultConfig() *Config {
	return &Config{
		Environment: "development",
		App: AppConfig{
			Skin: SkinKnowledge,
		},
		Storage: StorageConfig{
			Badger: BadgerConfig{
				Path:           "./data/dailydeck",
				ResetOnStartup: false,
			},
		},
		Logging: LoggingConfig{
			Level:      "info",
			Output:     []string{"stdout"},
			TimeFormat: "15:04:05",
		},
		Interaction: InteractionConfig{
			SwipeThreshold:    120,
			VelocityThreshold: 800,
			FlyDistance:       400,
			MaxTilt:           15,
			OverlayMax:        0.9,
			VerticalDamping:   0.1,
			CommitMs:          250,
			FadeMs:            200,
			FlipMs:            400,
			TapMaxMs:          250,
			SnackbarMs:        3000,
		},
		Pricing: PricingConfig{
			HistoryDays:      90,
			AnchorDate:       "2026-02-27",
			DefaultTimeframe: "1M",
		},
		Saved: SavedConfig{
			MaxEntries: 50,
		},
		Refresh: RefreshConfig{
			Enabled:  true,
			Schedule: "0 0 * * *", // midnight local time
		},
	}
}

// LoadFromFiles loads configuration starting from defaults, then applies each
// config file in order (later files override earlier ones), then environment
// overrides. Missing files are an error; an empty path list is not.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := DefaultConfig()

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the configuration against struct-level constraints
func (c *Config) Validate() error {
	if _, err := time.Parse("2006-01-02", c.Pricing.AnchorDate); err != nil {
		return fmt.Errorf("invalid pricing anchor_date %q: %w", c.Pricing.AnchorDate, err)
	}
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// applyEnvOverrides applies DAILYDECK_* environment variable overrides
func applyEnvOverrides(config *Config) {
	if v := os.Getenv("DAILYDECK_SKIN"); v != "" {
		config.App.Skin = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv("DAILYDECK_STORAGE_PATH"); v != "" {
		config.Storage.Badger.Path = v
	}
	if v := os.Getenv("DAILYDECK_LOG_LEVEL"); v != "" {
		config.Logging.Level = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv("DAILYDECK_RESET_ON_STARTUP"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			config.Storage.Badger.ResetOnStartup = b
		}
	}
}

// CommitDuration returns the fly-away animation duration
func (c InteractionConfig) CommitDuration() time.Duration {
	return time.Duration(c.CommitMs) * time.Millisecond
}

// FadeDuration returns the opacity fade duration
func (c InteractionConfig) FadeDuration() time.Duration {
	return time.Duration(c.FadeMs) * time.Millisecond
}

// FlipDuration returns the flip rotation duration
func (c InteractionConfig) FlipDuration() time.Duration {
	return time.Duration(c.FlipMs) * time.Millisecond
}

// TapMaxDuration returns the longest press still classified as a tap
func (c InteractionConfig) TapMaxDuration() time.Duration {
	return time.Duration(c.TapMaxMs) * time.Millisecond
}

// SnackbarDelay returns the notification auto-dismiss delay
func (c InteractionConfig) SnackbarDelay() time.Duration {
	return time.Duration(c.SnackbarMs) * time.Millisecond
}
