// Copyright (C) 2026 NetAutomate
// SPDX-License-Identifier: Apache-2.0


package commands

import (
	"github.com/spf13/cobra"
)

var (
	itemsService string
	itemsJSON    bool
)

var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "List service items for a service",
	RunE: func(cmd *cobra.Command, _ []string) error {
		c, err := buildContainer(cmd)
		if err != nil {
			return err
		}

		items, err := c.ServiceItemRepository().List(cmd.Context(), itemsService)
		if err != nil {
			return err
		}

		if itemsJSON {
			return printJSON(items)
		}
		printServiceItems(items)
		return nil
	},
}

func init() {
	itemsCmd.Flags().StringVar(&itemsService, "service", "", "name of the service (required)")
	itemsCmd.Flags().BoolVar(&itemsJSON, "json", false, "print raw JSON")
	_ = itemsCmd.MarkFlagRequired("service")
}
