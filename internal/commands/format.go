// Copyright (C) 2026 NetAutomate
// SPDX-License-Identifier: Apache-2.0


package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/netautomate/netorca-cli/internal/domain"
	"github.com/netautomate/netorca-cli/internal/errors"
)

var (
	pendingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	approvedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	completedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failureStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	successStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
)

func formatState(state domain.ChangeState) string {
	switch state {
	case domain.StatePending:
		return pendingStyle.Render(string(state))
	case domain.StateApproved:
		return approvedStyle.Render(string(state))
	case domain.StateCompleted:
		return completedStyle.Render(string(state))
	}
	return string(state)
}

func printChanges(changes []*domain.ChangeInstance) {
	fmt.Printf("Found %d change instances\n", len(changes))
	for _, change := range changes {
		fmt.Printf("  %s  %-10s  %s/%s\n",
			change.UUID,
			formatState(change.State),
			change.ServiceItem.Service.Name,
			change.ServiceItem.Name,
		)
	}
}

func printServiceItems(items []*domain.ServiceItem) {
	fmt.Printf("Found %d service items\n", len(items))
	for _, item := range items {
		fmt.Printf("  %s/%s\n", item.Service.Name, item.Name)
	}
}

func printReport(report *domain.CompletionReport) {
	status := successStyle.Render("ok")
	if !report.Successful {
		status = failureStyle.Render("failed")
	}
	fmt.Printf("%s: %s\n", status, report.Message)
}

func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// parseDeployedItem decodes the caller-supplied deployed item payload.
// The content is opaque to the client; only well-formed JSON objects are
// accepted.
func parseDeployedItem(raw string) (map[string]any, error) {
	if raw == "" {
		return nil, nil
	}
	var item map[string]any
	if err := json.Unmarshal([]byte(raw), &item); err != nil {
		return nil, &errors.ValidationError{
			Field:   "deployed-item",
			Value:   raw,
			Message: "not a valid JSON object",
		}
	}
	return item, nil
}

// parseState validates a user-supplied state against the closed set
// before any I/O happens.
func parseState(raw string) (domain.ChangeState, error) {
	state := domain.ChangeState(raw)
	if !state.Valid() {
		return "", &errors.ValidationError{
			Field:   "state",
			Value:   raw,
			Message: fmt.Sprintf("not one of %v", domain.ValidStates()),
		}
	}
	return state, nil
}
