// Copyright (c) 2026 Keymaster Team
// Signin - terminal sign-in form
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config provides configuration loading, merging, and persistence
// helpers for Signin. It uses Viper for file/env/flag parsing and exposes
// utility functions to read/write configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// KeyAnnotation marks a flag with the config key it overrides. Flags without
// it are bound under their own name.
const KeyAnnotation = "signin/config-key"

type Config struct {
	Language string       `mapstructure:"language" yaml:"language"`
	Signin   SigninConfig `mapstructure:"signin" yaml:"signin"`
	Log      LogConfig    `mapstructure:"log" yaml:"log"`
}

type SigninConfig struct {
	// Variant is "full" or "basic".
	Variant           string        `mapstructure:"variant" yaml:"variant"`
	// Delay of the simulated login. 0 signs in immediately.
	Delay             time.Duration `mapstructure:"delay" yaml:"delay"`
	MinPasswordLength int           `mapstructure:"min_password_length" yaml:"min_password_length"`
}

type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	// File receives log output while the TUI runs. Empty discards it.
	File string `mapstructure:"file" yaml:"file"`
}

// Defaults returns the built-in configuration values keyed by config key.
func Defaults() map[string]any {
	return map[string]any{
		"language":                   "en",
		"signin.variant":             "full",
		"signin.delay":               850 * time.Millisecond,
		"signin.min_password_length": 8,
		"log.level":                  "info",
		"log.file":                   "",
	}
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		// System-wide configuration paths
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Signin")
		default: // Linux, macOS, etc.
			configDir = "/etc/signin"
		}
	} else {
		// User-specific configuration paths
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "signin")
	}

	return filepath.Join(configDir, "signin.yaml"), nil
}

// LoadConfig merges defaults, the first signin.yaml found (or configFile when
// given), SIGNIN_* environment variables and the flags of cmd into a T.
// A missing config file is not an error unless configFile names it.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, configFile *string) (T, error) {
	var c T
	v := viper.New()

	// 1. Set defaults
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// 2. Set up file search paths
	v.SetConfigName("signin")
	v.SetConfigType("yaml")

	// 3. Explicit config file path from the --config flag.
	// This has the highest precedence for file-based configuration.
	if configFile != nil && *configFile != "" {
		v.SetConfigFile(*configFile)
	}

	// 4. Standard config locations
	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	// 5. Read in the config file.
	if err := v.ReadInConfig(); err != nil {
		// It's okay if the file is not found, but other errors are fatal.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return c, err
		}
	}

	// 6. Environment variables
	v.SetEnvPrefix("signin")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 7. Flags
	if cmd != nil {
		if err := bindFlags(v, cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	return c, nil
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var bindErr error
	flags.VisitAll(func(f *pflag.Flag) {
		if bindErr != nil {
			return
		}
		key := f.Name
		if keys, ok := f.Annotations[KeyAnnotation]; ok && len(keys) > 0 {
			key = keys[0]
		}
		bindErr = v.BindPFlag(key, f)
	})
	return bindErr
}

// AnnotateFlag ties the flag called name on flags to the config key.
func AnnotateFlag(flags *pflag.FlagSet, name, key string) {
	// only fails for unknown flags, which is a programming error
	if err := flags.SetAnnotation(name, KeyAnnotation, []string{key}); err != nil {
		panic(err)
	}
}

// WriteConfigFile writes c as YAML to the user or system config path and
// returns the path written.
func WriteConfigFile[T any](c *T, system bool) (string, error) {
	path, err := GetConfigPath(system)
	if err != nil {
		return "", err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}

	// Create directory if it doesn't exist
	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", err
	}

	return path, nil
}
