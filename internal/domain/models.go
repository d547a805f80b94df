// Copyright (C) 2026 NetAutomate
// SPDX-License-Identifier: Apache-2.0


package domain

import "fmt"

// ChangeState is the lifecycle position of a change instance. The set is
// closed and owned by the NetOrca server; clients only request
// transitions, they never derive them.
type ChangeState string

const (
	StatePending   ChangeState = "PENDING"
	StateApproved  ChangeState = "APPROVED"
	StateCompleted ChangeState = "COMPLETED"
)

// ValidStates lists the recognized change states in lifecycle order.
func ValidStates() []ChangeState {
	return []ChangeState{StatePending, StateApproved, StateCompleted}
}

// Valid reports whether s is one of the recognized states.
func (s ChangeState) Valid() bool {
	switch s {
	case StatePending, StateApproved, StateCompleted:
		return true
	}
	return false
}

// Service identifies the service that owns a service item.
type Service struct {
	Name string `json:"name"`
}

// ServiceItem is one item belonging to a named service. Read-only from
// the client's perspective.
type ServiceItem struct {
	Name    string  `json:"name"`
	Service Service `json:"service"`
}

// ChangeInstance is one infrastructure change request as reported by the
// server. The client only ever holds a transient snapshot; uuid is
// immutable and state is meaningful only as the server last reported it.
type ChangeInstance struct {
	UUID         string         `json:"uuid"`
	State        ChangeState    `json:"state"`
	ServiceItem  ServiceItem    `json:"service_item"`
	DeployedItem map[string]any `json:"deployed_item,omitempty"`
	Description  map[string]any `json:"description,omitempty"`
}

// ChangeUpdate is the caller-controlled portion of an instance update.
// The outgoing document is a full replace built from these fields; the
// description is not caller-settable.
type ChangeUpdate struct {
	State        ChangeState
	DeployedItem map[string]any
}

// CompletionReport is the aggregate outcome of a batch completion run.
// Count is the number of updates that landed. When a mid-batch update
// fails the report carries the progress made up to that point and
// Successful stays false.
type CompletionReport struct {
	Count      int    `json:"count"`
	Message    string `json:"msg"`
	Successful bool   `json:"successful"`
}

func (r *CompletionReport) String() string {
	return fmt.Sprintf("%s (count=%d, successful=%t)", r.Message, r.Count, r.Successful)
}
