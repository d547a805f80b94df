// Copyright (C) 2026 NetAutomate
// SPDX-License-Identifier: Apache-2.0


package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// Config carries everything one invocation needs: where the API lives
// and one credential form. APIKey and Username/Password are mutually
// exclusive; the credential is resolved once at the entry boundary.
type Config struct {
	APIURL   string `mapstructure:"url"`
	APIKey   string `mapstructure:"api_key"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Debug    bool   `mapstructure:"debug"`
}

// Dir returns the configuration directory.
func Dir() string {
	return filepath.Join(xdg.ConfigHome, "netorca")
}

// LoadConfig reads config.yaml from the config directory (or the
// current directory), then applies NETORCA_* environment overrides and
// the secure API-key storage.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(Dir())
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("NETORCA")
	viper.AutomaticEnv()

	viper.SetDefault("debug", false)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if v := os.Getenv(EnvURL); v != "" {
		config.APIURL = v
	}
	if v := os.Getenv(EnvAPIKey); v != "" {
		config.APIKey = v
	}
	if v := os.Getenv(EnvUsername); v != "" {
		config.Username = v
	}
	if v := os.Getenv(EnvPassword); v != "" {
		config.Password = v
	}

	if config.APIKey == "" {
		if key, err := NewSecureStorage().GetAPIKey(); err == nil {
			config.APIKey = key
		}
	}

	return &config, nil
}

// SaveConfig writes the non-secret fields to config.yaml. The API key
// and password never go into the plain-text file; the key belongs in
// secure storage.
func SaveConfig(config *Config) error {
	viper.Set("url", config.APIURL)
	viper.Set("username", config.Username)
	viper.Set("debug", config.Debug)

	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configFile := filepath.Join(Dir(), "config.yaml")
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
