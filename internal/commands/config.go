// Copyright (C) 2026 NetAutomate
// SPDX-License-Identifier: Apache-2.0


package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/netautomate/netorca-cli/internal/config"
	"github.com/netautomate/netorca-cli/internal/errors"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage CLI configuration",
}

var configGetCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Print a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		switch args[0] {
		case "url":
			fmt.Println(cfg.APIURL)
		case "username":
			fmt.Println(cfg.Username)
		case "debug":
			fmt.Println(cfg.Debug)
		case "api-key":
			if cfg.APIKey != "" {
				fmt.Println("(set)")
			} else {
				fmt.Println("(not set)")
			}
		default:
			return &errors.ValidationError{
				Field:   "key",
				Value:   args[0],
				Message: "unknown key; one of url, username, debug, api-key",
			}
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Set a configuration value",
	Long: `Set a configuration value. The api-key key goes to the system keyring;
everything else is written to config.yaml.`,
	Args: cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		switch key {
		case "api-key":
			return config.NewSecureStorage().SaveAPIKey(value)
		case "url":
			cfg.APIURL = value
		case "username":
			cfg.Username = value
		case "debug":
			cfg.Debug = value == "true"
		default:
			return &errors.ValidationError{
				Field:   "key",
				Value:   key,
				Message: "unknown key; one of url, username, debug, api-key",
			}
		}

		return config.SaveConfig(cfg)
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
}
