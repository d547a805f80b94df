// Copyright (C) 2026 NetAutomate
// SPDX-License-Identifier: Apache-2.0


package repository

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/netautomate/netorca-cli/internal/domain"
)

// apiServiceItemRepository implements domain.ServiceItemRepository
// against the orcabase service_items endpoint.
type apiServiceItemRepository struct {
	client
}

// NewServiceItemRepository creates an API-backed service item
// repository.
func NewServiceItemRepository(httpClient HTTPClient, baseURL, token string, logger *slog.Logger) domain.ServiceItemRepository {
	return &apiServiceItemRepository{client{
		httpClient: httpClient,
		baseURL:    baseURL,
		token:      token,
		logger:     logger,
	}}
}

// List fetches the items of the named service. The filter is server-side
// only; no client-side re-filtering happens here.
func (r *apiServiceItemRepository) List(ctx context.Context, serviceName string) ([]*domain.ServiceItem, error) {
	listURL := r.baseURL + EndpointServiceItems + "?service_name=" + url.QueryEscape(serviceName)
	return listAll[*domain.ServiceItem](ctx, &r.client, listURL)
}
