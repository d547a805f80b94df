// Copyright (C) 2026 NetAutomate
// SPDX-License-Identifier: Apache-2.0


package commands

import (
	"github.com/spf13/cobra"

	"github.com/netautomate/netorca-cli/internal/domain"
)

var (
	updateState        string
	updateDeployedItem string
)

var updateCmd = &cobra.Command{
	Use:   "update UUID",
	Short: "Update a single change instance",
	Long: `Request a state transition for one change instance, optionally
attaching a deployed item payload. State legality is enforced by the
server.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := parseState(updateState)
		if err != nil {
			return err
		}

		deployedItem, err := parseDeployedItem(updateDeployedItem)
		if err != nil {
			return err
		}

		c, err := buildContainer(cmd)
		if err != nil {
			return err
		}

		changed, err := c.ChangeUpdater().Update(cmd.Context(), args[0], domain.ChangeUpdate{
			State:        state,
			DeployedItem: deployedItem,
		})
		if err != nil {
			return err
		}

		return printJSON(changed)
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateState, "state", "", "target state (required)")
	updateCmd.Flags().StringVar(&updateDeployedItem, "deployed-item", "", "deployed item payload as a JSON object")
	_ = updateCmd.MarkFlagRequired("state")
}
