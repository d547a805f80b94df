// Copyright (C) 2026 NetAutomate
// SPDX-License-Identifier: Apache-2.0


package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netautomate/netorca-cli/internal/domain"
	"github.com/netautomate/netorca-cli/internal/errors"
)

func TestParseState(t *testing.T) {
	state, err := parseState("APPROVED")
	require.NoError(t, err)
	assert.Equal(t, domain.StateApproved, state)
}

func TestParseStateRejectsUnknown(t *testing.T) {
	for _, raw := range []string{"ACCEPTED", "approved", ""} {
		_, err := parseState(raw)
		require.Error(t, err, "state %q", raw)
		assert.True(t, errors.IsValidationError(err))
	}
}

func TestParseDeployedItem(t *testing.T) {
	item, err := parseDeployedItem(`{"ip": "10.0.0.1"}`)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"ip": "10.0.0.1"}, item)
}

func TestParseDeployedItemEmpty(t *testing.T) {
	item, err := parseDeployedItem("")
	require.NoError(t, err)
	assert.Nil(t, item)
}

func TestParseDeployedItemRejectsBadJSON(t *testing.T) {
	for _, raw := range []string{"not json", `["array"]`, `"string"`} {
		_, err := parseDeployedItem(raw)
		require.Error(t, err, "payload %q", raw)
		assert.True(t, errors.IsValidationError(err))
	}
}
