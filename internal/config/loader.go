package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/ronaldocrispimsg/SistemaMonitoramentoDeRede-NOC/internal/errors"
)

const (
	// ConfigFileName is the default config file name.
	ConfigFileName = ".noc.yaml"
	// GlobalConfigDir is the directory for global config.
	GlobalConfigDir = ".config/noc"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
)

// Load reads config from the specified path.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found",
				"Create a "+ConfigFileName+" or specify one with --config")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check the file exists and is valid YAML")
	}

	return parseConfig(v)
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. .noc.yaml in current directory
// 3. .noc.yaml in parent directories (stops at git root or home)
// 4. ~/.config/noc/config.yaml (global defaults)
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	// 1. Explicit path takes precedence
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	// 2. Current directory
	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine current directory",
			"Check directory permissions")
	}

	localConfig := filepath.Join(cwd, ConfigFileName)
	if _, err := os.Stat(localConfig); err == nil {
		return localConfig, nil
	}

	// 3. Walk up to parent directories
	home, _ := os.UserHomeDir()
	dir := cwd
	for {
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		if home != "" && parent == home {
			// Don't go above home directory
			break
		}
		dir = parent

		configPath := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		// Stop at git root
		gitPath := filepath.Join(dir, ".git")
		if _, err := os.Stat(gitPath); err == nil {
			break
		}
	}

	// 4. Global config
	if home != "" {
		globalConfig := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		if _, err := os.Stat(globalConfig); err == nil {
			return globalConfig, nil
		}
	}

	return "", nil
}

// LoadOrDefault loads config from the found path, or returns defaults if no
// config file exists anywhere in the search order.
func LoadOrDefault(explicit string) (*Config, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return Defaults(), nil
	}
	return Load(path)
}

// parseConfig maps the viper state onto a Config, applying defaults for
// absent fields and validating the result.
func parseConfig(v *viper.Viper) (*Config, error) {
	defaults := Defaults()
	v.SetDefault("api_base", defaults.APIBase)
	v.SetDefault("poll_interval", defaults.PollInterval)
	v.SetDefault("alert_interval", defaults.AlertInterval)
	v.SetDefault("notice_ttl", defaults.NoticeTTL)
	v.SetDefault("request_timeout", defaults.RequestTimeout)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Config file has invalid field types",
			"Durations use Go syntax, e.g. poll_interval: 10s")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Config file has invalid values",
			"Fix the reported field and try again")
	}

	return &cfg, nil
}
