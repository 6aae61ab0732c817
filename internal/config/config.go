// Package config loads yeardots settings: built-in defaults, then the yaml
// config file, then YEARDOTS_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/alexanderramin/yeardots/internal/checkin"
	"github.com/alexanderramin/yeardots/internal/domain"
	"github.com/alexanderramin/yeardots/internal/wallet"
	"gopkg.in/yaml.v3"
)

type CheckInConfig struct {
	Mode        domain.RewardMode `yaml:"mode"`
	MockDelay   time.Duration     `yaml:"mock_delay"`
	MockAmount  int               `yaml:"mock_amount"`
	ConfirmLive bool              `yaml:"confirm_live"`
}

type DisplayConfig struct {
	Locale       string        `yaml:"locale"`
	Timezone     string        `yaml:"timezone"`
	TickInterval time.Duration `yaml:"tick_interval"`
}

type LogConfig struct {
	File string `yaml:"file"`
}

type Config struct {
	Wallet  wallet.Config `yaml:"wallet"`
	CheckIn CheckInConfig `yaml:"checkin"`
	Display DisplayConfig `yaml:"display"`
	Log     LogConfig     `yaml:"log"`
}

func DefaultConfig() *Config {
	return &Config{
		Wallet: wallet.DefaultConfig(),
		CheckIn: CheckInConfig{
			Mode:        domain.RewardMock,
			MockDelay:   checkin.DefaultMockDelay,
			MockAmount:  checkin.DefaultMockAmount,
			ConfirmLive: true,
		},
		Display: DisplayConfig{
			Locale:       "en",
			TickInterval: time.Second,
		},
	}
}

// DefaultPath returns YEARDOTS_CONFIG or ~/.yeardots/config.yaml.
func DefaultPath() string {
	if p := os.Getenv("YEARDOTS_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".yeardots", "config.yaml")
}

// Load builds the effective configuration. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config %s: %w", path, err)
			}
		}
	}

	applyEnv(cfg)
	wallet.ApplyEnv(&cfg.Wallet)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("YEARDOTS_CHECKIN_MODE"); v != "" {
		cfg.CheckIn.Mode = domain.RewardMode(v)
	}
	if v := os.Getenv("YEARDOTS_MOCK_DELAY_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.CheckIn.MockDelay = time.Duration(n) * time.Millisecond
		}
	}
	if v := os.Getenv("YEARDOTS_CONFIRM_LIVE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.CheckIn.ConfirmLive = b
		}
	}
	if v := os.Getenv("YEARDOTS_LOCALE"); v != "" {
		cfg.Display.Locale = v
	}
	if v := os.Getenv("YEARDOTS_TZ"); v != "" {
		cfg.Display.Timezone = v
	}
	if v := os.Getenv("YEARDOTS_TICK_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Display.TickInterval = time.Duration(n) * time.Millisecond
		}
	}
	if v := os.Getenv("YEARDOTS_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
}

// Validate rejects settings the app cannot run with.
func (c *Config) Validate() error {
	if !domain.ValidRewardModes[string(c.CheckIn.Mode)] {
		return fmt.Errorf("checkin.mode %q: want mock or live", c.CheckIn.Mode)
	}
	if c.CheckIn.MockDelay < 0 {
		return fmt.Errorf("checkin.mock_delay must not be negative")
	}
	if c.Display.TickInterval <= 0 {
		return fmt.Errorf("display.tick_interval must be positive")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves Display.Timezone, defaulting to time.Local.
func (c *Config) Location() (*time.Location, error) {
	if c.Display.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Display.Timezone)
	if err != nil {
		return nil, fmt.Errorf("display.timezone: %w", err)
	}
	return loc, nil
}

// Locale returns the parsed display locale.
func (c *Config) Locale() domain.Locale {
	return domain.ParseLocale(c.Display.Locale)
}

// MockReward returns the mock reward action described by the config.
func (c *Config) MockReward() checkin.MockReward {
	return checkin.MockReward{Delay: c.CheckIn.MockDelay, Amount: c.CheckIn.MockAmount}
}

// OpenLog returns the destination for structured logs. Without a log file
// everything is discarded so the TUI owns the terminal.
func (c *Config) OpenLog() (io.WriteCloser, error) {
	if c.Log.File == "" {
		return nopCloser{io.Discard}, nil
	}
	if err := os.MkdirAll(filepath.Dir(c.Log.File), 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(c.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
