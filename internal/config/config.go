// Package config manages application configuration
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. FINCHAT_PORT
const EnvPrefix = "FINCHAT"

// Config holds all application configuration
type Config struct {
	// Server settings
	Port            string
	Environment     string // "development" or "production"
	ShutdownTimeout time.Duration
	MaxBodyBytes    int64

	// Logging
	LogLevel  string
	LogFormat string // "text" or "json"
	LogFile   string // rotated when set

	// Data files, both optional
	PriceCSV       string
	TranscriptFile string
	DatabaseURL    string

	// Security
	APISecret      string // enables bearer token auth when set
	TokenTTL       time.Duration
	RateLimitRPS   float64
	RateLimitBurst int

	// Answers
	SourceLabel      string
	FallbackStrategy string // "hash" or "random"
	FallbackSeed     int64

	// Client
	APIBaseURL    string
	APIHost       string
	ClientTimeout time.Duration
	APIToken      string
}

// SetDefaults registers default values on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("port", "5000")
	v.SetDefault("env", "development")
	v.SetDefault("shutdown_timeout", 10*time.Second)
	v.SetDefault("max_body_bytes", int64(64<<10))
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("log_file", "")
	v.SetDefault("price_csv", "")
	v.SetDefault("transcript_file", "")
	v.SetDefault("database_url", "")
	v.SetDefault("api_secret", "")
	v.SetDefault("token_ttl", 24*time.Hour)
	v.SetDefault("rate_limit_rps", 10.0)
	v.SetDefault("rate_limit_burst", 20)
	v.SetDefault("source_label", "Bajaj Finserv Quarterly Lexicon (FY24-FY25)")
	v.SetDefault("fallback_strategy", "hash")
	v.SetDefault("fallback_seed", int64(0))
	v.SetDefault("api_base_url", "")
	v.SetDefault("api_host", "")
	v.SetDefault("client_timeout", 8*time.Second)
	v.SetDefault("api_token", "")
}

// Prepare wires defaults, environment variables and the optional config
// file into v. An empty configFile searches for finchat.yaml in the
// working directory and ~/.finchat.
func Prepare(v *viper.Viper, configFile string) error {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("finchat")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".finchat"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}

// FromViper builds a Config from a prepared viper instance
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:             v.GetString("port"),
		Environment:      v.GetString("env"),
		ShutdownTimeout:  v.GetDuration("shutdown_timeout"),
		MaxBodyBytes:     v.GetInt64("max_body_bytes"),
		LogLevel:         v.GetString("log_level"),
		LogFormat:        v.GetString("log_format"),
		LogFile:          v.GetString("log_file"),
		PriceCSV:         v.GetString("price_csv"),
		TranscriptFile:   v.GetString("transcript_file"),
		DatabaseURL:      v.GetString("database_url"),
		APISecret:        v.GetString("api_secret"),
		TokenTTL:         v.GetDuration("token_ttl"),
		RateLimitRPS:     v.GetFloat64("rate_limit_rps"),
		RateLimitBurst:   v.GetInt("rate_limit_burst"),
		SourceLabel:      v.GetString("source_label"),
		FallbackStrategy: v.GetString("fallback_strategy"),
		FallbackSeed:     v.GetInt64("fallback_seed"),
		APIBaseURL:       v.GetString("api_base_url"),
		APIHost:          v.GetString("api_host"),
		ClientTimeout:    v.GetDuration("client_timeout"),
		APIToken:         v.GetString("api_token"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads configuration from defaults, finchat.yaml and FINCHAT_*
// environment variables
func Load() (*Config, error) {
	v := viper.New()
	if err := Prepare(v, ""); err != nil {
		return nil, err
	}
	return FromViper(v)
}

// Validate checks for settings the server cannot run with
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	switch c.FallbackStrategy {
	case "hash", "random":
	default:
		return fmt.Errorf("unknown fallback strategy %q", c.FallbackStrategy)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	if c.RateLimitRPS < 0 || c.RateLimitBurst < 0 {
		return fmt.Errorf("rate limits must not be negative")
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("max body bytes must be positive")
	}
	return nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Addr returns the listen address for Port
func (c *Config) Addr() string {
	if strings.Contains(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}
