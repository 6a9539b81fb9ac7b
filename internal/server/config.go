package server

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds the runtime settings for the API server.
type Config struct {
	ListenAddr string        `mapstructure:"listen_addr"`
	RedisAddr  string        `mapstructure:"redis_addr"`
	CacheTTL   time.Duration `mapstructure:"cache_ttl"`
	LogLevel   string        `mapstructure:"log_level"`
	LogFormat  string        `mapstructure:"log_format"`
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() Config {
	return Config{
		ListenAddr: ":8080",
		CacheTTL:   time.Hour,
		LogLevel:   "info",
		LogFormat:  "json",
	}
}

// LoadConfig reads server settings from an optional YAML file, with
// FINPLAN_-prefixed environment variables taking precedence.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("FINPLAN")
	v.AutomaticEnv()

	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("redis_addr", "")
	v.SetDefault("cache_ttl", time.Hour)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read server config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal server config: %w", err)
	}
	return cfg, nil
}
