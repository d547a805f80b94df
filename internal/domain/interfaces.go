// Copyright (C) 2026 NetAutomate
// SPDX-License-Identifier: Apache-2.0


package domain

import "context"

// Authenticator exchanges a username/password pair for a bearer token.
// No retry, no caching; a token lives for one invocation only.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// ChangeRepository lists change instances. The state filter is applied
// server-side; the service-name filter is applied client-side after
// retrieval, preserving server order. Either filter may be empty.
type ChangeRepository interface {
	List(ctx context.Context, state ChangeState, serviceName string) ([]*ChangeInstance, error)
}

// ChangeUpdater applies a state transition (plus optional deployed item)
// to one change instance. The write is a full-document replace with no
// concurrency check: concurrent updates are last-write-wins.
type ChangeUpdater interface {
	Update(ctx context.Context, uuid string, update ChangeUpdate) (*ChangeInstance, error)
}

// ServiceItemRepository lists the service items of a named service.
type ServiceItemRepository interface {
	List(ctx context.Context, serviceName string) ([]*ServiceItem, error)
}

// ChangeService is the batch workflow over a ChangeRepository and a
// ChangeUpdater.
type ChangeService interface {
	// CompleteApproved marks every approved change of the service as
	// completed, attaching the same deployed item to each. Updates run
	// sequentially in the order the repository returned them. On a
	// mid-batch failure it stops and returns the partial report together
	// with the error; completed updates are not rolled back.
	CompleteApproved(ctx context.Context, serviceName string, deployedItem map[string]any) (*CompletionReport, error)
}
