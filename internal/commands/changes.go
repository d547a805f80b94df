// Copyright (C) 2026 NetAutomate
// SPDX-License-Identifier: Apache-2.0


package commands

import (
	"github.com/spf13/cobra"

	"github.com/netautomate/netorca-cli/internal/domain"
)

var (
	changesState   string
	changesService string
	changesJSON    bool
)

var changesCmd = &cobra.Command{
	Use:   "changes",
	Short: "List change instances",
	Long: `List the change instances visible to your team. The state filter is
applied server-side; the service filter is applied client-side after
retrieval.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		var state domain.ChangeState
		if changesState != "" {
			var err error
			state, err = parseState(changesState)
			if err != nil {
				return err
			}
		}

		c, err := buildContainer(cmd)
		if err != nil {
			return err
		}

		changes, err := c.ChangeRepository().List(cmd.Context(), state, changesService)
		if err != nil {
			return err
		}

		if changesJSON {
			return printJSON(changes)
		}
		printChanges(changes)
		return nil
	},
}

func init() {
	changesCmd.Flags().StringVar(&changesState, "state", "", "filter by state (PENDING, APPROVED, COMPLETED)")
	changesCmd.Flags().StringVar(&changesService, "service", "", "filter by owning service name")
	changesCmd.Flags().BoolVar(&changesJSON, "json", false, "print raw JSON")
}
