package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ronaldocrispimsg/SistemaMonitoramentoDeRede-NOC/internal/errors"
)

// configHeader is written at the top of generated config files.
const configHeader = `# noc configuration
# Durations use Go syntax: 10s, 1m, 500ms.
`

// fileConfig mirrors Config with durations as strings, so the generated file
// reads "30s" instead of raw nanoseconds.
type fileConfig struct {
	APIBase        string `yaml:"api_base"`
	PollInterval   string `yaml:"poll_interval"`
	AlertInterval  string `yaml:"alert_interval"`
	NoticeTTL      string `yaml:"notice_ttl"`
	RequestTimeout string `yaml:"request_timeout"`
}

// Save writes the config as YAML to the given path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(fileConfig{
		APIBase:        cfg.APIBase,
		PollInterval:   cfg.PollInterval.String(),
		AlertInterval:  cfg.AlertInterval.String(),
		NoticeTTL:      cfg.NoticeTTL.String(),
		RequestTimeout: cfg.RequestTimeout.String(),
	})
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to serialize config",
			"This is unexpected - please report this bug!")
	}

	content := append([]byte(configHeader), data...)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write config file: "+path,
			"Check directory permissions")
	}
	return nil
}
