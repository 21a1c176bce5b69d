package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds file/env configuration for the CLI. Everything has a usable
// default so a missing config file is not an error.
type Config struct {
	DBPath        string      `mapstructure:"db_path"`
	DefaultSeason string      `mapstructure:"default_season"`
	Water         WaterConfig `mapstructure:"water"`
}

// WaterConfig tunes the hydration-goal formula.
type WaterConfig struct {
	BaseMlPerKg float64 `mapstructure:"base_ml_per_kg"`
	MlPerBlock  float64 `mapstructure:"ml_per_block"`
}

// Load reads config.yaml from dir (if present) and FITCOACH_* environment
// variables. Defaults apply when neither source sets a key.
func Load(dir string) (Config, error) {
	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("fitcoach")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("db_path", "")
	v.SetDefault("default_season", "")
	v.SetDefault("water.base_ml_per_kg", 35.0)
	v.SetDefault("water.ml_per_block", 500.0)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}
