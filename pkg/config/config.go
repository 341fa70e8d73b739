// Package config resolves runtime configuration from viper state: config
// file values, AGENTSCAN_* environment variables, and named profiles.
package config

import (
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Defaults applied when neither the config file nor the environment sets
// a key. Command flags override resolved values per invocation.
const (
	DefaultProjectDir = ".claude/agents"
	DefaultUserDir    = "~/.claude/agents"
	DefaultFormat     = "text"
)

// Init registers configuration defaults with viper. Registration makes
// every key visible to AutomaticEnv, so AGENTSCAN_* variables resolve
// even when no config file sets the key.
func Init() {
	viper.SetDefault("project_dir", DefaultProjectDir)
	viper.SetDefault("user_dir", DefaultUserDir)
	viper.SetDefault("format", DefaultFormat)
	viper.SetDefault("strict", false)
	viper.SetDefault("log_level", "info")
	viper.SetDefault("log_format", "text")
	viper.SetDefault("quiet", false)
	viper.SetDefault("profile", "")
}

// ProfileConfig is a named preset of configuration values, applied on
// top of the base configuration when selected.
type ProfileConfig map[string]any

// Config is the resolved runtime configuration.
type Config struct {
	ProjectDir string                   `mapstructure:"project_dir"`
	UserDir    string                   `mapstructure:"user_dir"`
	Format     string                   `mapstructure:"format"`
	Strict     bool                     `mapstructure:"strict"`
	LogLevel   string                   `mapstructure:"log_level"`
	LogFormat  string                   `mapstructure:"log_format"`
	Profile    string                   `mapstructure:"profile"`
	Profiles   map[string]ProfileConfig `mapstructure:"profiles"`
}

// GetConfigFromViper resolves the configuration, applies the active
// profile if one is selected, and fills remaining gaps with defaults.
func GetConfigFromViper() (Config, error) {
	var config Config

	if err := viper.Unmarshal(&config); err != nil {
		return config, errors.Wrap(err, "failed to unmarshal configuration")
	}

	// "default" is the implicit base, never an applied profile.
	if config.Profiles != nil {
		delete(config.Profiles, "default")
	}

	if name := activeProfile(config.Profile); name != "" && config.Profiles != nil {
		if profile, exists := config.Profiles[name]; exists {
			if err := applyProfile(&config, profile); err != nil {
				return config, err
			}
		}
	}

	if config.ProjectDir == "" {
		config.ProjectDir = DefaultProjectDir
	}
	if config.UserDir == "" {
		config.UserDir = DefaultUserDir
	}
	if config.Format == "" {
		config.Format = DefaultFormat
	}

	return config, nil
}

func activeProfile(profile string) string {
	if profile == "default" || profile == "" {
		return ""
	}
	return profile
}

func applyProfile(config *Config, profile ProfileConfig) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           config,
		WeaklyTypedInput: true,
		ZeroFields:       false, // Don't overwrite with zero values
	})
	if err != nil {
		return errors.Wrap(err, "failed to create profile decoder")
	}

	if err := decoder.Decode(profile); err != nil {
		return errors.Wrap(err, "failed to apply profile configuration")
	}

	return nil
}
