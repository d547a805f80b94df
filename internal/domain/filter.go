// Copyright (C) 2026 NetAutomate
// SPDX-License-Identifier: Apache-2.0


package domain

// FilterByService returns the changes whose embedded service item
// belongs to the named service. The relative order of matches is
// preserved and the predicate is idempotent: filtering an already
// filtered slice with the same name returns it unchanged.
func FilterByService(changes []*ChangeInstance, serviceName string) []*ChangeInstance {
	filtered := make([]*ChangeInstance, 0, len(changes))
	for _, change := range changes {
		if change.ServiceItem.Service.Name == serviceName {
			filtered = append(filtered, change)
		}
	}
	return filtered
}
