// Copyright (C) 2026 NetAutomate
// SPDX-License-Identifier: Apache-2.0


package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/netautomate/netorca-cli/internal/config"
	"github.com/netautomate/netorca-cli/internal/container"
	"github.com/netautomate/netorca-cli/internal/errors"
	"github.com/netautomate/netorca-cli/pkg/version"
)

var (
	cfg    *config.Config
	logger *slog.Logger

	flagURL      string
	flagAPIKey   string
	flagUsername string
	flagPassword string
	debug        bool
)

var rootCmd = &cobra.Command{
	Use:   "netorca",
	Short: "NetOrca CLI - change-management automation for the NetOrca platform",
	Long: `NetOrca CLI lets automation tooling list, update and batch-complete
infrastructure change instances tracked by the NetOrca platform.`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		var err error
		cfg, err = config.LoadConfig()
		if err != nil {
			// Don't fail if config doesn't exist yet
			cfg = &config.Config{}
		}

		// Flags win over config. An explicit credential flag also
		// silences the other credential form so stored values cannot
		// turn one supplied form into an ambiguous pair.
		if flagURL != "" {
			cfg.APIURL = flagURL
		}
		if flagAPIKey != "" {
			cfg.APIKey = flagAPIKey
			cfg.Username = ""
			cfg.Password = ""
		}
		if flagUsername != "" || flagPassword != "" {
			cfg.APIKey = ""
			if flagUsername != "" {
				cfg.Username = flagUsername
			}
			if flagPassword != "" {
				cfg.Password = flagPassword
			}
		}
		if debug {
			cfg.Debug = true
		}

		level := slog.LevelInfo
		if cfg.Debug {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

		return nil
	},
}

// buildContainer wires one invocation: validated config, one token, the
// repositories and the workflow.
func buildContainer(cmd *cobra.Command) (*container.Container, error) {
	return container.New(cmd.Context(), cfg, logger)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		errorMsg := errors.FormatUserError(err)
		fmt.Fprintf(os.Stderr, "Error: %s\n", errorMsg)

		if errors.IsAuthError(err) {
			fmt.Fprintf(os.Stderr, "\nHint: Run 'netorca login' or supply --username/--password\n")
		} else if errors.IsNetworkError(err) {
			fmt.Fprintf(os.Stderr, "\nHint: Check your network connection and the --url value\n")
		}

		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagURL, "url", "", "base URL of the NetOrca API")
	rootCmd.PersistentFlags().StringVar(&flagAPIKey, "api-key", "", "pre-issued API key (skips login)")
	rootCmd.PersistentFlags().StringVar(&flagUsername, "username", "", "team username (used when no API key is available)")
	rootCmd.PersistentFlags().StringVar(&flagPassword, "password", "", "team password (used when no API key is available)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(changesCmd)
	rootCmd.AddCommand(itemsCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(configCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(version.Current())
	},
}
