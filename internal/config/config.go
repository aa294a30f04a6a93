// Package config loads luka's optional configuration file and resolves
// the filesystem locations the toolkit depends on.
//
// Configuration lives at $XDG_CONFIG_HOME/luka/config.yaml and every key
// can be overridden with a LUKA_* environment variable (LUKA_PROFILE_FILE,
// LUKA_SIZE_THRESHOLD, ...). A missing config file is not an error; the
// defaults describe a stock setup.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// Config holds the toolkit settings.
type Config struct {
	// ProfileFile is the shell startup file persistent PATH additions are
	// written to.
	ProfileFile string `mapstructure:"profile_file"`

	Size SizeConfig `mapstructure:"size"`
}

// SizeConfig holds defaults for the size command.
type SizeConfig struct {
	// Threshold is the default minimum size to report, human form.
	Threshold string `mapstructure:"threshold"`

	// Depth is the default traversal depth.
	Depth int `mapstructure:"depth"`
}

// Dir returns luka's configuration directory.
func Dir() string {
	return filepath.Join(xdg.ConfigHome, "luka")
}

// Load reads the config file, applies LUKA_* environment overrides, and
// fills in defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(Dir())

	v.SetEnvPrefix("LUKA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}
	v.SetDefault("profile_file", filepath.Join(home, ".bashrc"))
	v.SetDefault("size.threshold", "1K")
	v.SetDefault("size.depth", 1)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
