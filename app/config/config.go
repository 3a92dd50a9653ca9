package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the store rating service
type Config struct {
	// Server
	Port     string `yaml:"port"`
	Host     string `yaml:"host"`
	LogLevel string `yaml:"log_level"`

	// Database
	DatabaseURL string `yaml:"database_url"`

	// Kratos
	KratosPublicURL string `yaml:"kratos_public_url"`
	KratosAdminURL  string `yaml:"kratos_admin_url"`

	// Fallback session cache. Empty path disables the cache entirely;
	// the resolver then runs platform-only.
	FallbackCachePath string `yaml:"fallback_cache_path"`

	// Sessions
	SessionTimeout time.Duration `yaml:"session_timeout"`

	// Rate limiting
	RateLimitRPS   float64 `yaml:"rate_limit_rps"`
	RateLimitBurst int     `yaml:"rate_limit_burst"`
}

// Load reads configuration from an optional YAML file named by
// CONFIG_FILE, then overrides with environment variables. Environment
// always wins so deployments can patch a shared file per instance.
func Load() (*Config, error) {
	config := &Config{
		Port:           "9500",
		Host:           "0.0.0.0",
		LogLevel:       "info",
		SessionTimeout: 24 * time.Hour,
		RateLimitRPS:   20,
		RateLimitBurst: 40,
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(config, path); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	// Server configuration
	config.Port = getEnvOrKeep("PORT", config.Port)
	config.Host = getEnvOrKeep("HOST", config.Host)
	config.LogLevel = getEnvOrKeep("LOG_LEVEL", config.LogLevel)

	// Database configuration
	config.DatabaseURL = getEnvOrKeep("DATABASE_URL", config.DatabaseURL)
	if config.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	// Kratos configuration
	config.KratosPublicURL = getEnvOrKeep("KRATOS_PUBLIC_URL", config.KratosPublicURL)
	if config.KratosPublicURL == "" {
		return nil, fmt.Errorf("KRATOS_PUBLIC_URL is required")
	}

	config.KratosAdminURL = getEnvOrKeep("KRATOS_ADMIN_URL", config.KratosAdminURL)
	if config.KratosAdminURL == "" {
		return nil, fmt.Errorf("KRATOS_ADMIN_URL is required")
	}

	config.FallbackCachePath = getEnvOrKeep("FALLBACK_CACHE_PATH", config.FallbackCachePath)

	if value := os.Getenv("SESSION_TIMEOUT"); value != "" {
		timeout, err := time.ParseDuration(value)
		if err != nil {
			return nil, fmt.Errorf("invalid SESSION_TIMEOUT: %w", err)
		}
		config.SessionTimeout = timeout
	}

	if value := os.Getenv("RATE_LIMIT_RPS"); value != "" {
		rps, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid RATE_LIMIT_RPS: %w", err)
		}
		config.RateLimitRPS = rps
	}

	if value := os.Getenv("RATE_LIMIT_BURST"); value != "" {
		burst, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("invalid RATE_LIMIT_BURST: %w", err)
		}
		config.RateLimitBurst = burst
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	port, err := strconv.ParseInt(c.Port, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid port: %s", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535: %s", c.Port)
	}

	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	if c.SessionTimeout < time.Minute {
		return fmt.Errorf("session timeout must be at least 1 minute, got: %v", c.SessionTimeout)
	}

	if c.RateLimitRPS <= 0 {
		return fmt.Errorf("rate limit RPS must be positive, got: %v", c.RateLimitRPS)
	}
	if c.RateLimitBurst < 1 {
		return fmt.Errorf("rate limit burst must be at least 1, got: %d", c.RateLimitBurst)
	}

	return nil
}

// FallbackCacheEnabled reports whether a fallback cache path is set
func (c *Config) FallbackCacheEnabled() bool {
	return c.FallbackCachePath != ""
}

func loadFile(config *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	return nil
}

// Helper functions

func getEnvOrKeep(key, current string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return current
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
