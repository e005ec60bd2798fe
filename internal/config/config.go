package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for our application
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Display DisplayConfig `mapstructure:"display"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type APIConfig struct {
	BaseURL        string  `mapstructure:"base_url"`
	Key            string  `mapstructure:"key"`
	TimeoutSeconds int     `mapstructure:"timeout_seconds"`
	RateLimit      float64 `mapstructure:"rate_limit"`
	RateLimitBurst int     `mapstructure:"rate_limit_burst"`
	CacheSize      int     `mapstructure:"cache_size"`
}

// Timeout returns the per-request timeout as a duration.
func (c APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

type DisplayConfig struct {
	MaxRows int `mapstructure:"max_rows"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and environment variables. Values in
// the YAML file may reference environment variables ($VAR), which are
// expanded before parsing. A missing API key falls back to FINGRID_API_KEY.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Round-trip through a map first so malformed YAML fails on parse
	// rather than producing a partially populated config.
	var rawConfig map[string]interface{}
	if err := yaml.Unmarshal(data, &rawConfig); err != nil {
		return nil, fmt.Errorf("failed to unmarshal raw config: %w", err)
	}

	data, err = yaml.Marshal(rawConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal raw config: %w", err)
	}

	// Expand environment variables
	expandedData := os.ExpandEnv(string(data))

	v := viper.New()
	setDefaults(v)
	v.SetConfigType("yaml")
	if err := v.ReadConfig(strings.NewReader(expandedData)); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.API.Key == "" {
		config.API.Key = os.Getenv("FINGRID_API_KEY")
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", "https://api.fingrid.fi/v1/variable")
	v.SetDefault("api.timeout_seconds", 10)
	v.SetDefault("api.rate_limit", 5.0)
	v.SetDefault("api.rate_limit_burst", 10)
	v.SetDefault("api.cache_size", 128)

	v.SetDefault("display.max_rows", 20)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}
