// Copyright (C) 2026 NetAutomate
// SPDX-License-Identifier: Apache-2.0


package config

// Environment variable constants
const (
	// EnvURL is the environment variable for the NetOrca base URL
	EnvURL = "NETORCA_URL"

	// EnvAPIKey is the environment variable for a pre-issued API key
	EnvAPIKey = "NETORCA_API_KEY"

	// EnvUsername is the environment variable for the team username
	EnvUsername = "NETORCA_USERNAME"

	// EnvPassword is the environment variable for the team password
	EnvPassword = "NETORCA_PASSWORD"

	// EnvDebug is the environment variable for debug mode
	EnvDebug = "NETORCA_DEBUG"
)
