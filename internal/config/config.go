// Package config loads app settings from an optional YAML file and
// ATELIER_* environment variables. Everything has a default; a missing
// config file is the normal case.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds user-tunable settings.
type Config struct {
	// LearnerName and LearnerEmail identify the local profile.
	LearnerName  string `mapstructure:"learner_name"`
	LearnerEmail string `mapstructure:"learner_email"`

	// DBPath overrides the default database location when set.
	DBPath string `mapstructure:"db_path"`
}

// Default returns the built-in settings used when no file or env overrides
// exist.
func Default() Config {
	return Config{
		LearnerName:  "Atelier Learner",
		LearnerEmail: "learner@atelier.local",
	}
}

// Load reads the config file at $XDG_CONFIG_HOME/atelier/config.yaml (or
// ~/.config/atelier/config.yaml), then applies ATELIER_* env overrides.
// A missing file yields the defaults.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if dir, err := configDir(); err == nil {
		v.AddConfigPath(dir)
	}

	def := Default()
	v.SetDefault("learner_name", def.LearnerName)
	v.SetDefault("learner_email", def.LearnerEmail)
	v.SetDefault("db_path", "")

	v.SetEnvPrefix("ATELIER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if cfg.LearnerName == "" {
		cfg.LearnerName = def.LearnerName
	}
	return cfg, nil
}

// configDir resolves the directory that may hold config.yaml.
func configDir() (string, error) {
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, "atelier"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "atelier"), nil
}
