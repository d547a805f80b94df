// Copyright (C) 2026 NetAutomate
// SPDX-License-Identifier: Apache-2.0


package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

func TestLoadConfigEnvOverrides(t *testing.T) {
	viper.Reset()
	t.Setenv(EnvURL, "https://dev.netorca.io")
	t.Setenv(EnvAPIKey, "env-key")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://dev.netorca.io", cfg.APIURL)
	assert.Equal(t, "env-key", cfg.APIKey)
}

func TestLoadConfigUserPassFromEnv(t *testing.T) {
	keyring.MockInit()
	viper.Reset()
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvURL, "https://dev.netorca.io")
	t.Setenv(EnvUsername, "team_member_a")
	t.Setenv(EnvPassword, "hunter2")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "team_member_a", cfg.Username)
	assert.Equal(t, "hunter2", cfg.Password)
}

func TestLoadConfigReadsFile(t *testing.T) {
	keyring.MockInit()
	viper.Reset()
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvURL, "")

	dir := t.TempDir()
	content := []byte("url: https://prod.netorca.io\nusername: automation\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o600))

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() { _ = os.Chdir(cwd) }()

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://prod.netorca.io", cfg.APIURL)
	assert.Equal(t, "automation", cfg.Username)
}
