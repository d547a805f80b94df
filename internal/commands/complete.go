// Copyright (C) 2026 NetAutomate
// SPDX-License-Identifier: Apache-2.0


package commands

import (
	"github.com/spf13/cobra"
)

var (
	completeService      string
	completeDeployedItem string
)

var completeCmd = &cobra.Command{
	Use:   "complete",
	Short: "Complete all approved changes for a service",
	Long: `Mark every APPROVED change instance of the named service as COMPLETED,
attaching the same deployed item payload to each. Updates run
sequentially; on the first failure the partial progress is reported and
nothing is rolled back.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		deployedItem, err := parseDeployedItem(completeDeployedItem)
		if err != nil {
			return err
		}

		c, err := buildContainer(cmd)
		if err != nil {
			return err
		}

		report, err := c.ChangeService().CompleteApproved(cmd.Context(), completeService, deployedItem)
		if report != nil {
			printReport(report)
		}
		return err
	},
}

func init() {
	completeCmd.Flags().StringVar(&completeService, "service", "", "name of the service (required)")
	completeCmd.Flags().StringVar(&completeDeployedItem, "deployed-item", "", "deployed item payload as a JSON object, applied to every completed change")
	_ = completeCmd.MarkFlagRequired("service")
}
