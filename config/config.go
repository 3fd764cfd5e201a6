package config

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const envPrefix = "MINESWEEPER"

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type Config struct {
	// Difficulty is a preset name; empty means ask the player.
	Difficulty   string        `mapstructure:"difficulty"`
	Seed         int64         `mapstructure:"seed"`
	TickInterval time.Duration `mapstructure:"tick_interval"`
	Log          LogConfig     `mapstructure:"log"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("difficulty", "")
	v.SetDefault("seed", 0)
	v.SetDefault("tick_interval", time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "minesweeper.log")
}

// Load reads the configuration from path, or from ./config/config.yaml when
// path is empty. A missing default file is not an error. Environment
// variables prefixed with MINESWEEPER_ override file values.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "read config")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}

	if cfg.TickInterval <= 0 {
		return nil, errors.Errorf("tick_interval must be positive, got %s", cfg.TickInterval)
	}
	return &cfg, nil
}
