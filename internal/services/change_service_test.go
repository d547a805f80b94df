// Copyright (C) 2026 NetAutomate
// SPDX-License-Identifier: Apache-2.0


package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netautomate/netorca-cli/internal/domain"
	"github.com/netautomate/netorca-cli/internal/errors"
)

type mockChangeRepo struct {
	changes []*domain.ChangeInstance
	err     error

	gotState   domain.ChangeState
	gotService string
}

func (m *mockChangeRepo) List(_ context.Context, state domain.ChangeState, serviceName string) ([]*domain.ChangeInstance, error) {
	m.gotState = state
	m.gotService = serviceName
	return m.changes, m.err
}

type recordedUpdate struct {
	uuid   string
	update domain.ChangeUpdate
}

type mockUpdater struct {
	updates []recordedUpdate
	failAt  int // 1-based call index that fails; 0 means never
	err     error
}

func (m *mockUpdater) Update(_ context.Context, uuid string, update domain.ChangeUpdate) (*domain.ChangeInstance, error) {
	m.updates = append(m.updates, recordedUpdate{uuid: uuid, update: update})
	if m.failAt != 0 && len(m.updates) == m.failAt {
		return nil, m.err
	}
	return &domain.ChangeInstance{UUID: uuid, State: update.State}, nil
}

func newTestService(repo domain.ChangeRepository, updater domain.ChangeUpdater) domain.ChangeService {
	return NewChangeService(repo, updater, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func approvedChanges(uuids ...string) []*domain.ChangeInstance {
	changes := make([]*domain.ChangeInstance, 0, len(uuids))
	for _, uuid := range uuids {
		changes = append(changes, &domain.ChangeInstance{
			UUID:  uuid,
			State: domain.StateApproved,
			ServiceItem: domain.ServiceItem{
				Service: domain.Service{Name: "LoadBalancer"},
			},
		})
	}
	return changes
}

func TestCompleteApproved(t *testing.T) {
	repo := &mockChangeRepo{changes: approvedChanges("uuid-1", "uuid-2", "uuid-3")}
	updater := &mockUpdater{}
	service := newTestService(repo, updater)

	deployedItem := map[string]any{"ip": "10.0.0.1"}
	report, err := service.CompleteApproved(context.Background(), "LoadBalancer", deployedItem)
	require.NoError(t, err)

	assert.Equal(t, domain.StateApproved, repo.gotState)
	assert.Equal(t, "LoadBalancer", repo.gotService)

	require.Len(t, updater.updates, 3)
	for i, recorded := range updater.updates {
		assert.Equal(t, approvedChanges("uuid-1", "uuid-2", "uuid-3")[i].UUID, recorded.uuid, "updates must run in repository order")
		assert.Equal(t, domain.StateCompleted, recorded.update.State)
		assert.Equal(t, deployedItem, recorded.update.DeployedItem, "every update carries the identical deployed item")
	}

	assert.Equal(t, 3, report.Count)
	assert.True(t, report.Successful)
	assert.Equal(t, "Completed 3 changes", report.Message)
}

func TestCompleteApprovedNothingToDo(t *testing.T) {
	repo := &mockChangeRepo{changes: nil}
	updater := &mockUpdater{}
	service := newTestService(repo, updater)

	report, err := service.CompleteApproved(context.Background(), "LoadBalancer", nil)
	require.NoError(t, err)

	assert.Empty(t, updater.updates)
	assert.Equal(t, 0, report.Count)
	assert.True(t, report.Successful)
}

func TestCompleteApprovedStopsOnFailure(t *testing.T) {
	repo := &mockChangeRepo{changes: approvedChanges("uuid-1", "uuid-2", "uuid-3")}
	updater := &mockUpdater{
		failAt: 2,
		err:    &errors.APIError{StatusCode: 500, Status: "Internal Server Error", ErrorType: errors.ErrorTypeAPI},
	}
	service := newTestService(repo, updater)

	report, err := service.CompleteApproved(context.Background(), "LoadBalancer", nil)
	require.Error(t, err)
	assert.True(t, errors.IsServerError(err))

	// the failed call is the last one issued; nothing after it runs
	assert.Len(t, updater.updates, 2)

	require.NotNil(t, report, "partial progress must be reported")
	assert.Equal(t, 1, report.Count)
	assert.False(t, report.Successful)
	assert.Contains(t, report.Message, "uuid-2")
}

func TestCompleteApprovedListFailure(t *testing.T) {
	repo := &mockChangeRepo{err: &errors.AuthError{Message: "Invalid token.", Reason: "http_401"}}
	updater := &mockUpdater{}
	service := newTestService(repo, updater)

	report, err := service.CompleteApproved(context.Background(), "LoadBalancer", nil)
	require.Error(t, err)
	assert.True(t, errors.IsAuthError(err))
	assert.Nil(t, report, "no writes happened, no report to assemble")
	assert.Empty(t, updater.updates)
}
