// Copyright (C) 2026 NetAutomate
// SPDX-License-Identifier: Apache-2.0


package errors

import (
	"errors"
	"fmt"
	"net"
	"net/url"
)

type ErrorType int

const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeAPI
	ErrorTypeNetwork
	ErrorTypeAuth
	ErrorTypeValidation
	ErrorTypeNotFound
)

// ValidationError reports malformed caller input, raised before any
// network call is attempted.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthError reports that an exchange did not yield a usable token, or
// that the server rejected the token presented.
type AuthError struct {
	Message string
	Reason  string
}

func (e *AuthError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("authentication failed: %s (%s)", e.Message, e.Reason)
	}
	return fmt.Sprintf("authentication failed: %s", e.Message)
}

// NetworkError wraps a transport failure before any HTTP status was
// received.
type NetworkError struct {
	Err       error
	Operation string
	URL       string
}

func (e *NetworkError) Error() string {
	if e.Operation != "" {
		return fmt.Sprintf("network error during %s: %v", e.Operation, e.Err)
	}
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// APIError reports a non-success HTTP status from the server.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
	ErrorType  ErrorType
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("API error: %s (status %d)", e.Status, e.StatusCode)
}

func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return e.StatusCode == t.StatusCode || e.ErrorType == t.ErrorType
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

func IsAuthError(err error) bool {
	if err == nil {
		return false
	}

	var authErr *AuthError
	if errors.As(err, &authErr) {
		return true
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 401 || apiErr.StatusCode == 403
	}

	return false
}

func IsNetworkError(err error) bool {
	if err == nil {
		return false
	}

	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return true
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}

	var ne net.Error
	return errors.As(err, &ne)
}

func IsNotFound(err error) bool {
	if err == nil {
		return false
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 404
	}

	return false
}

func IsServerError(err error) bool {
	if err == nil {
		return false
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500 && apiErr.StatusCode < 600
	}

	return false
}
