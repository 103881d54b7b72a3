// Package config loads and validates the noc client configuration.
package config

import (
	"fmt"
	"time"
)

// Default settings applied when a field is absent from the config file.
const (
	DefaultAPIBase        = "http://127.0.0.1:8000"
	DefaultPollInterval   = 10 * time.Second
	DefaultAlertInterval  = 5 * time.Second
	DefaultNoticeTTL      = 6 * time.Second
	DefaultRequestTimeout = 10 * time.Second
)

// Config holds the client settings.
type Config struct {
	// APIBase is the monitoring backend base URL.
	APIBase string `mapstructure:"api_base" yaml:"api_base"`

	// PollInterval is the host snapshot poll cadence.
	PollInterval time.Duration `mapstructure:"poll_interval" yaml:"poll_interval"`

	// AlertInterval is the alert feed poll cadence.
	AlertInterval time.Duration `mapstructure:"alert_interval" yaml:"alert_interval"`

	// NoticeTTL is how long an alert notification stays on screen.
	NoticeTTL time.Duration `mapstructure:"notice_ttl" yaml:"notice_ttl"`

	// RequestTimeout bounds a single backend request.
	RequestTimeout time.Duration `mapstructure:"request_timeout" yaml:"request_timeout"`
}

// Defaults returns a Config populated with the default settings.
func Defaults() *Config {
	return &Config{
		APIBase:        DefaultAPIBase,
		PollInterval:   DefaultPollInterval,
		AlertInterval:  DefaultAlertInterval,
		NoticeTTL:      DefaultNoticeTTL,
		RequestTimeout: DefaultRequestTimeout,
	}
}

// Validate checks the config for values the dashboard cannot run with.
func (c *Config) Validate() error {
	if c.APIBase == "" {
		return fmt.Errorf("api_base must not be empty")
	}
	if c.PollInterval < time.Second {
		return fmt.Errorf("poll_interval %s is below the 1s minimum", c.PollInterval)
	}
	if c.AlertInterval < time.Second {
		return fmt.Errorf("alert_interval %s is below the 1s minimum", c.AlertInterval)
	}
	if c.NoticeTTL <= 0 {
		return fmt.Errorf("notice_ttl must be positive")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be positive")
	}
	return nil
}
