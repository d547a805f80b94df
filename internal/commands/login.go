// Copyright (C) 2026 NetAutomate
// SPDX-License-Identifier: Apache-2.0


package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/netautomate/netorca-cli/internal/config"
)

var loginCmd = &cobra.Command{
	Use:   "login [API_KEY]",
	Short: "Store your API key securely",
	Long: `Store your NetOrca API key in the system keyring. The key is verified
against the API before it is stored.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var apiKey string
		if len(args) > 0 {
			apiKey = args[0]
		} else {
			fmt.Print("Enter your API key: ")

			// Read without echoing; fall back to plain input when no
			// terminal is attached (pipes, CI).
			byteKey, err := term.ReadPassword(int(syscall.Stdin))
			if err != nil {
				reader := bufio.NewReader(os.Stdin)
				input, _ := reader.ReadString('\n')
				apiKey = strings.TrimSpace(input)
			} else {
				apiKey = string(byteKey)
				fmt.Println()
			}
		}

		if apiKey == "" {
			return fmt.Errorf("API key cannot be empty")
		}

		// Verify the key with a real call before storing it.
		cfg.APIKey = apiKey
		cfg.Username = ""
		cfg.Password = ""
		c, err := buildContainer(cmd)
		if err != nil {
			return err
		}
		if _, err := c.ChangeRepository().List(cmd.Context(), "", ""); err != nil {
			return fmt.Errorf("API key verification failed: %w", err)
		}

		if err := config.NewSecureStorage().SaveAPIKey(apiKey); err != nil {
			return fmt.Errorf("failed to save API key: %w", err)
		}

		fmt.Println("API key validated and stored in the system keyring")
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored API key",
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := config.NewSecureStorage().DeleteAPIKey(); err != nil {
			return err
		}
		fmt.Println("API key removed")
		return nil
	},
}
