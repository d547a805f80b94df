// Copyright (C) 2026 NetAutomate
// SPDX-License-Identifier: Apache-2.0


package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/netautomate/netorca-cli/internal/errors"
)

// API endpoints, relative to the caller-supplied base URL.
const (
	EndpointLogin           = "/api-token-auth/"
	EndpointChangeInstances = "/orcabase/change_instances/"
	EndpointServiceItems    = "/orcabase/service_items/"
)

// HTTPClient is the transport capability injected into every
// repository. Connection pooling and default timeouts are the injected
// client's responsibility.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// client carries the pieces shared by all API-backed repositories.
type client struct {
	httpClient HTTPClient
	baseURL    string
	token      string
	logger     *slog.Logger
}

// doRequest issues one HTTP request against an absolute URL. Transport
// failures come back as NetworkError; status handling is the caller's.
func (c *client) doRequest(ctx context.Context, method, url string, body interface{}) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if c.token != "" {
		req.Header.Set("Authorization", "Token "+c.token)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("API request",
		"method", method,
		"url", req.URL.String(),
		"has_body", body != nil,
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &errors.NetworkError{
			Err:       err,
			Operation: fmt.Sprintf("%s %s", method, url),
			URL:       url,
		}
	}

	c.logger.Debug("API response", "status", resp.Status)

	return resp, nil
}

// decodeResponse closes the body after enforcing the expected status and
// decoding into out (skipped when out is nil). Any other status is
// parsed into the typed error taxonomy.
func (c *client) decodeResponse(resp *http.Response, want int, out interface{}) error {
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != want {
		body, _ := io.ReadAll(resp.Body)
		return errors.ParseAPIError(resp.StatusCode, body)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// listEnvelope is the paginated collection shape every list endpoint
// returns.
type listEnvelope[T any] struct {
	Count   int     `json:"count"`
	Next    *string `json:"next"`
	Results []T     `json:"results"`
}

// listAll pages through a collection by following the envelope's next
// link until it is exhausted, so callers always see the complete
// collection. A zero count short-circuits to an empty slice without
// touching results.
func listAll[T any](ctx context.Context, c *client, url string) ([]T, error) {
	collected := []T{}
	for url != "" {
		page, err := fetchPage[T](ctx, c, url)
		if err != nil {
			return nil, err
		}
		if page.Count == 0 {
			return []T{}, nil
		}
		collected = append(collected, page.Results...)
		if page.Next == nil {
			break
		}
		url = *page.Next
	}
	return collected, nil
}

func fetchPage[T any](ctx context.Context, c *client, url string) (*listEnvelope[T], error) {
	resp, err := c.doRequest(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	var page listEnvelope[T]
	if err := c.decodeResponse(resp, http.StatusOK, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
