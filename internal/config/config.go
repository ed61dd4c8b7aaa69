// Package config provides configuration management for the MCP server.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Placeholder values written into template files; treated as unset.
const (
	placeholderClientID    = "your-client-id"
	placeholderAccessToken = "your-access-token"
)

// Config holds all application configuration. It is built once at startup
// and treated as immutable afterwards.
type Config struct {
	API         APIConfig         `mapstructure:"api"`
	Instruments InstrumentsConfig `mapstructure:"instruments"`
	Logging     LoggingConfig     `mapstructure:"logging"`
	Credentials Credentials       `mapstructure:"-"` // Loaded separately
}

// APIConfig holds upstream API settings.
type APIConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// Timeout returns the request timeout as a duration.
func (a APIConfig) Timeout() time.Duration {
	if a.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// InstrumentsConfig holds instrument master settings.
type InstrumentsConfig struct {
	DBPath       string `mapstructure:"db_path"`
	MasterURL    string `mapstructure:"master_url"`
	RefreshHours int    `mapstructure:"refresh_hours"`
}

// RefreshInterval returns how long a loaded instrument master stays fresh.
func (i InstrumentsConfig) RefreshInterval() time.Duration {
	if i.RefreshHours <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(i.RefreshHours) * time.Hour
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level    string `mapstructure:"level"`
	File     bool   `mapstructure:"file"`
	FilePath string `mapstructure:"file_path"`
}

// Credentials holds API credentials.
type Credentials struct {
	Dhan DhanCredentials `mapstructure:"dhan"`
}

// DhanCredentials identify the trading account. Both fields are required;
// the server refuses to start without them.
type DhanCredentials struct {
	ClientID    string `mapstructure:"client_id"`
	AccessToken string `mapstructure:"access_token"`
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/dhan-mcp"
	}
	return filepath.Join(home, ".config", "dhan-mcp")
}

// Load loads configuration from the specified directory.
// If configDir is empty, uses the default config directory.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	cfg := &Config{}

	if err := loadConfigFile(configDir, cfg); err != nil {
		return nil, fmt.Errorf("loading config.toml: %w", err)
	}

	if err := loadCredentials(configDir, &cfg.Credentials); err != nil {
		return nil, fmt.Errorf("loading credentials.toml: %w", err)
	}

	applyEnvOverrides(cfg)
	applyDefaults(cfg, configDir)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func loadConfigFile(configDir string, target *Config) error {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found, create template
			return createTemplateConfig(configDir)
		}
		return err
	}

	return v.Unmarshal(target)
}

func loadCredentials(configDir string, creds *Credentials) error {
	v := viper.New()
	v.SetConfigName("credentials")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Credentials may still arrive via environment variables.
			_ = createTemplateCredentials(configDir)
			return nil
		}
		return err
	}

	return v.Unmarshal(creds)
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DHAN_CLIENT_ID"); v != "" {
		cfg.Credentials.Dhan.ClientID = v
	}
	if v := os.Getenv("DHAN_ACCESS_TOKEN"); v != "" {
		cfg.Credentials.Dhan.AccessToken = v
	}
	if v := os.Getenv("DHAN_BASE_URL"); v != "" {
		cfg.API.BaseURL = v
	}
}

func applyDefaults(cfg *Config, configDir string) {
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = "https://api.dhan.co/v2"
	}
	if cfg.API.TimeoutSeconds == 0 {
		cfg.API.TimeoutSeconds = 30
	}
	if cfg.Instruments.DBPath == "" {
		cfg.Instruments.DBPath = filepath.Join(configDir, "instruments.db")
	}
	if cfg.Instruments.MasterURL == "" {
		cfg.Instruments.MasterURL = "https://images.dhan.co/api-data/api-scrip-master.csv"
	}
	if cfg.Instruments.RefreshHours == 0 {
		cfg.Instruments.RefreshHours = 24
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.FilePath == "" {
		cfg.Logging.FilePath = filepath.Join(configDir, "logs", "server.log")
	}
}

// Validate validates the configuration. Missing or placeholder credentials
// are fatal: the server must not report itself ready without a usable token.
func (c *Config) Validate() error {
	clientID := strings.TrimSpace(c.Credentials.Dhan.ClientID)
	token := strings.TrimSpace(c.Credentials.Dhan.AccessToken)

	if clientID == "" || clientID == placeholderClientID {
		return fmt.Errorf("dhan client id is not configured (set DHAN_CLIENT_ID or edit credentials.toml)")
	}
	if token == "" || token == placeholderAccessToken {
		return fmt.Errorf("dhan access token is not configured (set DHAN_ACCESS_TOKEN or edit credentials.toml)")
	}
	if c.API.TimeoutSeconds < 0 {
		return fmt.Errorf("timeout_seconds cannot be negative")
	}
	if c.Instruments.RefreshHours < 0 {
		return fmt.Errorf("instruments refresh_hours cannot be negative")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}
	return nil
}
