// Package config loads CLI configuration from syncline.yml and the
// environment.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the syncline CLI configuration.
type Config struct {
	Redis     RedisConfig     `mapstructure:"redis"`
	Inspector InspectorConfig `mapstructure:"inspector"`
}

// RedisConfig selects and configures the Redis-backed entity store. An empty
// address means the CLI uses the in-memory store.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

// InspectorConfig configures the debug HTTP surface.
type InspectorConfig struct {
	Addr string `mapstructure:"addr"`
}

// Load loads the configuration from syncline.yml or syncline.yaml,
// falling back to defaults and SYNCLINE_* environment variables.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prefix", "syncline:")
	v.SetDefault("inspector.addr", "localhost:4400")

	v.SetConfigName("syncline")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("SYNCLINE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found - use defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func validateConfig(config *Config) error {
	if config.Redis.DB < 0 {
		return fmt.Errorf("redis.db must not be negative, got %d", config.Redis.DB)
	}
	if config.Inspector.Addr == "" {
		return fmt.Errorf("inspector.addr must not be empty")
	}
	return nil
}
