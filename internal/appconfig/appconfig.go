// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// DefaultBaseURL is the address a stock Ollama daemon listens on.
	DefaultBaseURL = "http://localhost:11434"
	// EnvPrefix prefixes environment overrides, e.g. OLLAMATOOL_HOST.
	EnvPrefix = "OLLAMATOOL"
	// defaultRequestTimeout is the default timeout for HTTP requests.
	defaultRequestTimeout = 10 * time.Second
)

// Config represents the top-level application configuration.
type Config struct {
	Host           string `json:"host,omitempty" mapstructure:"host"`
	TimeoutSeconds int    `json:"timeout,omitempty" mapstructure:"timeout"`
	LogFile        string `json:"logFile,omitempty" mapstructure:"logFile"`
	Debug          bool   `json:"debug" mapstructure:"debug"`
	Strict         bool   `json:"strict" mapstructure:"strict"`
	ConfigPath     string `json:"-" mapstructure:"-"`
}

// BaseURL resolves the daemon address requests are built against.
func (c Config) BaseURL() string {
	host := strings.TrimSpace(c.Host)
	if host == "" {
		return DefaultBaseURL
	}
	return strings.TrimRight(host, "/")
}

// RequestTimeout returns the timeout duration for HTTP requests, falling back to the default if not specified.
func (c Config) RequestTimeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return defaultRequestTimeout
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// LogFilePath returns the path to the application log file. Empty means console only.
func (c Config) LogFilePath() string {
	return strings.TrimSpace(c.LogFile)
}

// Load merges flags > env > config file > defaults from v into a Config.
// A missing file is only an error when the path was given explicitly.
func Load(v *viper.Viper, path string, explicit bool) (Config, error) {
	configPath := ""
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			missing := errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
			if !missing || explicit {
				return Config{}, fmt.Errorf("failed to load config: %w", err)
			}
		} else {
			configPath = v.ConfigFileUsed()
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if config.TimeoutSeconds <= 0 {
		config.TimeoutSeconds = int(defaultRequestTimeout.Seconds())
	}
	config.ConfigPath = configPath
	return config, nil
}
