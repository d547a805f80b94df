// Copyright (C) 2026 NetAutomate
// SPDX-License-Identifier: Apache-2.0


package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/netautomate/netorca-cli/internal/domain"
	"github.com/netautomate/netorca-cli/internal/errors"
)

// apiAuthenticator implements domain.Authenticator against the
// api-token-auth endpoint. It carries no token of its own.
type apiAuthenticator struct {
	client
}

// NewAuthenticator creates an API-backed authenticator.
func NewAuthenticator(httpClient HTTPClient, baseURL string, logger *slog.Logger) domain.Authenticator {
	return &apiAuthenticator{client{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     logger,
	}}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges the credentials for a token. A rejected exchange or a
// response without a token field is an AuthError; an empty token is
// never returned as success.
func (a *apiAuthenticator) Login(ctx context.Context, username, password string) (string, error) {
	resp, err := a.doRequest(ctx, http.MethodPost, a.baseURL+EndpointLogin, &loginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		rejected := errors.ParseAPIError(resp.StatusCode, body)
		return "", &errors.AuthError{
			Message: errors.FormatUserError(rejected),
			Reason:  "login_rejected",
		}
	}

	var login loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&login); err != nil {
		return "", fmt.Errorf("failed to decode login response: %w", err)
	}

	if login.Token == "" {
		return "", &errors.AuthError{
			Message: "login response contained no token",
			Reason:  "missing_token",
		}
	}

	return login.Token, nil
}
