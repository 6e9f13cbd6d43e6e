package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the gateway configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Upstream UpstreamConfig `yaml:"upstream"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServerConfig contains the HTTP entry point settings
type ServerConfig struct {
	Host           string   `yaml:"host"`
	Port           int      `yaml:"port"`
	Mode           string   `yaml:"mode"`
	AllowedOrigins []string `yaml:"allowed_origins,omitempty"`
}

// UpstreamConfig contains the completion service credential and endpoint
type UpstreamConfig struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
}

// LoggingConfig contains structured logging settings
type LoggingConfig struct {
	Level         string `yaml:"level"`
	Output        string `yaml:"output,omitempty"`
	ConsoleOutput bool   `yaml:"console_output"`
	MaxSize       int    `yaml:"max_size,omitempty"`
	MaxBackups    int    `yaml:"max_backups,omitempty"`
	MaxAge        int    `yaml:"max_age,omitempty"`
	Compress      bool   `yaml:"compress,omitempty"`
}

// LoadConfig loads configuration from a YAML file, then applies
// environment overrides and defaults. An empty path skips the file and
// uses environment values only.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(&cfg)
	setDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyEnv overrides file values with environment-supplied ones. The
// credential is expected to come from the environment in most deployments.
func applyEnv(cfg *Config) {
	if key := os.Getenv("DEEPSEEK_API_KEY"); key != "" {
		cfg.Upstream.APIKey = key
	}
	if base := os.Getenv("DEEPSEEK_BASE_URL"); base != "" {
		cfg.Upstream.BaseURL = base
	}
}

func setDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Mode == "" {
		cfg.Server.Mode = "release"
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = []string{"*"}
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.ConsoleOutput = true
	}
	if cfg.Logging.MaxSize == 0 {
		cfg.Logging.MaxSize = 100
	}
	if cfg.Logging.MaxBackups == 0 {
		cfg.Logging.MaxBackups = 10
	}
}

func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", cfg.Server.Port)
	}
	switch cfg.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("invalid server mode: %q", cfg.Server.Mode)
	}
	return nil
}
