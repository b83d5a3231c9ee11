// Package config provides configuration management for ipowatch.
//
// Configuration is optional on disk: a config.toml in the config
// directory seeds values, and environment variables override it.
// Credentials are only ever taken from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

// DefaultThresholdUSD is the estimated-offering size an IPO must
// strictly exceed to be included in the alert email.
const DefaultThresholdUSD = 200_000_000

// DefaultTimezone anchors "today" to the intended run time of the
// external scheduler.
const DefaultTimezone = "Asia/Dubai"

// MissingVarError reports a required credential or address absent from
// both the config file and the environment. It is raised before any
// network activity.
type MissingVarError struct {
	Var string
}

// Error implements the error interface.
func (e *MissingVarError) Error() string {
	return fmt.Sprintf("missing required configuration: %s", e.Var)
}

// Config holds all application configuration.
type Config struct {
	Finnhub FinnhubConfig `mapstructure:"finnhub"`
	Email   EmailConfig   `mapstructure:"email"`
	Alert   AlertConfig   `mapstructure:"alert"`
}

// FinnhubConfig holds market-data provider settings.
type FinnhubConfig struct {
	APIKey  string        `mapstructure:"api_key"`
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// EmailConfig holds mail-relay settings.
type EmailConfig struct {
	SMTPHost string `mapstructure:"smtp_host"`
	SMTPPort int    `mapstructure:"smtp_port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
	To       string `mapstructure:"to"`
}

// AlertConfig holds alerting parameters.
type AlertConfig struct {
	ThresholdUSD float64 `mapstructure:"threshold_usd"`
	Timezone     string  `mapstructure:"timezone"`
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/ipowatch"
	}
	return filepath.Join(home, ".config", "ipowatch")
}

// Load loads configuration from the specified directory, applying
// environment overrides on top. An absent config file is not an
// error; required credentials are checked later by Validate so that
// commands which do no network I/O still work.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	v.SetDefault("finnhub.base_url", "https://finnhub.io/api/v1")
	v.SetDefault("finnhub.timeout", "20s")
	v.SetDefault("email.smtp_host", "smtp.gmail.com")
	v.SetDefault("email.smtp_port", 465)
	v.SetDefault("alert.threshold_usd", float64(DefaultThresholdUSD))
	v.SetDefault("alert.timezone", DefaultTimezone)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config.toml: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("FINNHUB_KEY"); v != "" {
		cfg.Finnhub.APIKey = v
	}
	if v := os.Getenv("FINNHUB_BASE_URL"); v != "" {
		cfg.Finnhub.BaseURL = v
	}

	if v := os.Getenv("EMAIL_USER"); v != "" {
		cfg.Email.Username = v
		cfg.Email.From = v
	}
	if v := os.Getenv("EMAIL_PASS"); v != "" {
		cfg.Email.Password = v
	}
	if v := os.Getenv("ALERT_RECIPIENT"); v != "" {
		cfg.Email.To = v
	}
	if v := os.Getenv("SMTP_HOST"); v != "" {
		cfg.Email.SMTPHost = v
	}
	if v := os.Getenv("SMTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid SMTP_PORT %q: %w", v, err)
		}
		cfg.Email.SMTPPort = port
	}

	if v := os.Getenv("ALERT_THRESHOLD_USD"); v != "" {
		threshold, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid ALERT_THRESHOLD_USD %q: %w", v, err)
		}
		cfg.Alert.ThresholdUSD = threshold
	}
	if v := os.Getenv("ALERT_TIMEZONE"); v != "" {
		cfg.Alert.Timezone = v
	}

	return nil
}

// Validate checks that every required credential and address is set.
// It must pass before any network call is attempted.
func (c *Config) Validate() error {
	if c.Finnhub.APIKey == "" {
		return &MissingVarError{Var: "FINNHUB_KEY"}
	}
	if c.Email.Username == "" {
		return &MissingVarError{Var: "EMAIL_USER"}
	}
	if c.Email.Password == "" {
		return &MissingVarError{Var: "EMAIL_PASS"}
	}
	if c.Email.To == "" {
		return &MissingVarError{Var: "ALERT_RECIPIENT"}
	}
	if c.Email.SMTPHost == "" {
		return &MissingVarError{Var: "SMTP_HOST"}
	}
	if c.Email.SMTPPort <= 0 {
		return fmt.Errorf("smtp_port must be positive, got %d", c.Email.SMTPPort)
	}
	if c.Alert.ThresholdUSD <= 0 {
		return fmt.Errorf("alert threshold must be positive, got %g", c.Alert.ThresholdUSD)
	}
	return nil
}

// Location resolves the configured timezone, falling back to the
// fixed Gulf Standard Time offset when the zone database is
// unavailable.
func (c *Config) Location() *time.Location {
	if loc, err := time.LoadLocation(c.Alert.Timezone); err == nil {
		return loc
	}
	return time.FixedZone("GST", 4*60*60)
}
