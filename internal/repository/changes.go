// Copyright (C) 2026 NetAutomate
// SPDX-License-Identifier: Apache-2.0


package repository

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/netautomate/netorca-cli/internal/domain"
	"github.com/netautomate/netorca-cli/internal/errors"
)

// updateDescription is the fixed placeholder sent with every update.
// The update surface does not carry caller-authored description
// content; the server owns it.
var updateDescription = map[string]string{"updated_by": "netorca-cli"}

// apiChangeRepository implements domain.ChangeRepository and
// domain.ChangeUpdater against the orcabase change_instances endpoint.
type apiChangeRepository struct {
	client
}

// NewChangeRepository creates an API-backed change instance repository.
func NewChangeRepository(httpClient HTTPClient, baseURL, token string, logger *slog.Logger) domain.ChangeRepository {
	return &apiChangeRepository{client{
		httpClient: httpClient,
		baseURL:    baseURL,
		token:      token,
		logger:     logger,
	}}
}

// NewChangeUpdater creates an API-backed change instance updater.
func NewChangeUpdater(httpClient HTTPClient, baseURL, token string, logger *slog.Logger) domain.ChangeUpdater {
	return &apiChangeRepository{client{
		httpClient: httpClient,
		baseURL:    baseURL,
		token:      token,
		logger:     logger,
	}}
}

// List fetches the change instances visible to the token, following
// pagination to the end. The state filter goes to the server as a query
// parameter; the service-name filter is applied client-side afterwards,
// preserving server order.
func (r *apiChangeRepository) List(ctx context.Context, state domain.ChangeState, serviceName string) ([]*domain.ChangeInstance, error) {
	listURL := r.baseURL + EndpointChangeInstances
	if state != "" {
		listURL += "?state=" + url.QueryEscape(string(state))
	}

	changes, err := listAll[*domain.ChangeInstance](ctx, &r.client, listURL)
	if err != nil {
		return nil, err
	}

	if serviceName != "" {
		changes = domain.FilterByService(changes, serviceName)
	}

	return changes, nil
}

// updateEnvelope is the full-document replace sent on update.
type updateEnvelope struct {
	Description  map[string]string  `json:"description"`
	State        domain.ChangeState `json:"state"`
	DeployedItem map[string]any     `json:"deployed_item,omitempty"`
}

// Update replaces the instance identified by uuid with the envelope
// built from update. Last write wins; there is no concurrency check and
// no retry. The server's updated representation is returned as decoded.
func (r *apiChangeRepository) Update(ctx context.Context, uuid string, update domain.ChangeUpdate) (*domain.ChangeInstance, error) {
	if uuid == "" {
		return nil, &errors.ValidationError{Field: "uuid", Message: "uuid cannot be empty"}
	}

	envelope := &updateEnvelope{
		Description:  updateDescription,
		State:        update.State,
		DeployedItem: update.DeployedItem,
	}

	r.logger.Debug("updating change instance", "uuid", uuid, "state", update.State)

	updateURL := r.baseURL + EndpointChangeInstances + url.PathEscape(uuid) + "/"
	resp, err := r.doRequest(ctx, http.MethodPut, updateURL, envelope)
	if err != nil {
		return nil, err
	}

	var changed domain.ChangeInstance
	if err := r.decodeResponse(resp, http.StatusOK, &changed); err != nil {
		return nil, err
	}
	return &changed, nil
}
