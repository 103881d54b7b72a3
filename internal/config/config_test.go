package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	assert.Equal(t, "http://127.0.0.1:8000", cfg.APIBase)
	assert.Equal(t, 10*time.Second, cfg.PollInterval)
	assert.Equal(t, 5*time.Second, cfg.AlertInterval)
	assert.Equal(t, 6*time.Second, cfg.NoticeTTL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults pass", func(c *Config) {}, true},
		{"empty api base", func(c *Config) { c.APIBase = "" }, false},
		{"poll below floor", func(c *Config) { c.PollInterval = 500 * time.Millisecond }, false},
		{"alert below floor", func(c *Config) { c.AlertInterval = 100 * time.Millisecond }, false},
		{"zero notice ttl", func(c *Config) { c.NoticeTTL = 0 }, false},
		{"negative timeout", func(c *Config) { c.RequestTimeout = -time.Second }, false},
		{"one second intervals pass", func(c *Config) {
			c.PollInterval = time.Second
			c.AlertInterval = time.Second
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)
			if tt.ok {
				assert.NoError(t, cfg.Validate())
			} else {
				assert.Error(t, cfg.Validate())
			}
		})
	}
}
