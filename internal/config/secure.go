// Copyright (C) 2026 NetAutomate
// SPDX-License-Identifier: Apache-2.0


package config

import (
	"fmt"
	"os"

	"github.com/zalando/go-keyring"
)

const (
	keyringService = "netorca-cli"
	keyringAccount = "api-key"
)

// SecureStorage keeps the API key out of plain-text config files.
// Lookup order: environment variable first (CI/CD, containers), then
// the system keyring.
type SecureStorage struct{}

// NewSecureStorage creates a new secure storage instance
func NewSecureStorage() *SecureStorage {
	return &SecureStorage{}
}

// SaveAPIKey stores the API key in the system keyring.
func (s *SecureStorage) SaveAPIKey(apiKey string) error {
	if apiKey == "" {
		return fmt.Errorf("API key cannot be empty")
	}
	if err := keyring.Set(keyringService, keyringAccount, apiKey); err != nil {
		return fmt.Errorf("failed to store API key in keyring: %w", err)
	}
	return nil
}

// GetAPIKey retrieves the API key from the environment or the keyring.
func (s *SecureStorage) GetAPIKey() (string, error) {
	if envKey := os.Getenv(EnvAPIKey); envKey != "" {
		return envKey, nil
	}

	apiKey, err := keyring.Get(keyringService, keyringAccount)
	if err != nil || apiKey == "" {
		return "", fmt.Errorf("API key not found; run 'netorca login' or set %s", EnvAPIKey)
	}

	return apiKey, nil
}

// DeleteAPIKey removes the API key from the keyring.
func (s *SecureStorage) DeleteAPIKey() error {
	if err := keyring.Delete(keyringService, keyringAccount); err != nil && err != keyring.ErrNotFound {
		return fmt.Errorf("failed to remove API key from keyring: %w", err)
	}
	return nil
}
