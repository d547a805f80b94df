// Copyright (C) 2026 NetAutomate
// SPDX-License-Identifier: Apache-2.0


package domain

import "github.com/netautomate/netorca-cli/internal/errors"

// Credential is the authentication input for one invocation: either a
// pre-issued API key or a username/password pair, never both. It is
// resolved once at the entry boundary and not re-inspected by the
// repositories.
type Credential interface {
	credential()
}

// APIKey is a pre-issued token that skips the login exchange.
type APIKey string

func (APIKey) credential() {}

// UserPass is a username/password pair exchanged for a token at login.
type UserPass struct {
	Username string
	Password string
}

func (UserPass) credential() {}

// NewCredential resolves raw inputs into exactly one credential form.
// Supplying both forms, an incomplete pair, or nothing is a validation
// error reported before any I/O.
func NewCredential(apiKey, username, password string) (Credential, error) {
	hasPair := username != "" || password != ""
	switch {
	case apiKey != "" && hasPair:
		return nil, &errors.ValidationError{
			Field:   "api_key",
			Message: "supply either an API key or a username/password pair, not both",
		}
	case apiKey != "":
		return APIKey(apiKey), nil
	case username != "" && password != "":
		return UserPass{Username: username, Password: password}, nil
	case hasPair:
		return nil, &errors.ValidationError{
			Field:   "username",
			Message: "username and password must be supplied together",
		}
	default:
		return nil, &errors.ValidationError{
			Message: "no credentials: supply an API key or a username and password",
		}
	}
}
