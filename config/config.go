// Package config loads service settings from an optional file, a .env file and VALUATION_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "VALUATION"

type Config struct {
	Server ServerConfig     `mapstructure:"server"`
	MC     MonteCarloConfig `mapstructure:"mc"`
	Log    LogConfig        `mapstructure:"log"`
}

type ServerConfig struct {
	Address string `mapstructure:"address" validate:"required"`
	Mode    string `mapstructure:"mode"    validate:"oneof=debug release test"`
}

// MonteCarloConfig holds simulation defaults used when a request does not override them.
type MonteCarloConfig struct {
	Paths      int    `mapstructure:"paths"      validate:"min=1"`
	MaxPaths   int    `mapstructure:"max_paths"  validate:"gtefield=Paths"`
	Seed       uint64 `mapstructure:"seed"`
	Antithetic bool   `mapstructure:"antithetic"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"       validate:"oneof=debug info warn error"`
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("mc.paths", 10000)
	v.SetDefault("mc.max_paths", 1000000)
	v.SetDefault("mc.seed", 1)
	v.SetDefault("mc.antithetic", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size", 100)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 28)
	v.SetDefault("log.compress", false)
}

// Load reads the configuration. path may be empty, in which case only defaults and the environment apply.
// A missing .env file is not an error.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config error: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config error: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}
