// Copyright (C) 2026 NetAutomate
// SPDX-License-Identifier: Apache-2.0


package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func makeChange(uuid, service string) *ChangeInstance {
	return &ChangeInstance{
		UUID:  uuid,
		State: StateApproved,
		ServiceItem: ServiceItem{
			Name:    "item-" + uuid,
			Service: Service{Name: service},
		},
	}
}

func TestFilterByService(t *testing.T) {
	changes := []*ChangeInstance{
		makeChange("a", "LoadBalancer"),
		makeChange("b", "DNS"),
		makeChange("c", "LoadBalancer"),
		makeChange("d", "Firewall"),
	}

	filtered := FilterByService(changes, "LoadBalancer")

	assert.Len(t, filtered, 2)
	assert.Equal(t, "a", filtered[0].UUID, "relative order must be preserved")
	assert.Equal(t, "c", filtered[1].UUID)
}

func TestFilterByServiceIdempotent(t *testing.T) {
	changes := []*ChangeInstance{
		makeChange("a", "DNS"),
		makeChange("b", "DNS"),
		makeChange("c", "LoadBalancer"),
	}

	once := FilterByService(changes, "DNS")
	twice := FilterByService(once, "DNS")

	assert.Equal(t, once, twice)
}

func TestFilterByServiceNoMatch(t *testing.T) {
	changes := []*ChangeInstance{
		makeChange("a", "DNS"),
	}

	filtered := FilterByService(changes, "LoadBalancer")

	assert.NotNil(t, filtered)
	assert.Empty(t, filtered)
}

func TestFilterByServiceEmptyInput(t *testing.T) {
	assert.Empty(t, FilterByService(nil, "DNS"))
}
