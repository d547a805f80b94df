// Copyright (C) 2026 NetAutomate
// SPDX-License-Identifier: Apache-2.0


package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// apiErrorBody covers the error shapes the NetOrca API produces:
// a "detail" string for auth/permission/not-found responses and a
// "non_field_errors" array for rejected form submissions.
type apiErrorBody struct {
	Detail         string   `json:"detail"`
	NonFieldErrors []string `json:"non_field_errors"`
}

// ParseAPIError turns a non-success HTTP response into a typed error.
// 401 and 403 become AuthError; everything else becomes APIError with
// the status code attached.
func ParseAPIError(statusCode int, body []byte) error {
	message := ""

	var apiErr apiErrorBody
	if err := json.Unmarshal(body, &apiErr); err == nil {
		switch {
		case apiErr.Detail != "":
			message = apiErr.Detail
		case len(apiErr.NonFieldErrors) > 0:
			message = strings.Join(apiErr.NonFieldErrors, "; ")
		}
	}

	if message == "" {
		message = strings.TrimSpace(string(body))
	}
	if message == "" {
		message = fmt.Sprintf("API request failed with status %d", statusCode)
	}

	return errorFromStatusCode(statusCode, message)
}

func errorFromStatusCode(statusCode int, message string) error {
	switch statusCode {
	case 401:
		return &AuthError{Message: message, Reason: "http_401"}

	case 403:
		return &AuthError{Message: message, Reason: "http_403"}

	case 404:
		return &APIError{
			StatusCode: statusCode,
			Status:     httpStatusText(statusCode),
			Message:    message,
			ErrorType:  ErrorTypeNotFound,
		}

	case 400, 422:
		return &APIError{
			StatusCode: statusCode,
			Status:     httpStatusText(statusCode),
			Message:    message,
			ErrorType:  ErrorTypeValidation,
		}

	case 500, 502, 503, 504:
		return &APIError{
			StatusCode: statusCode,
			Status:     httpStatusText(statusCode),
			Message:    message,
			ErrorType:  ErrorTypeAPI,
		}
	}

	return &APIError{
		StatusCode: statusCode,
		Status:     httpStatusText(statusCode),
		Message:    message,
		ErrorType:  ErrorTypeUnknown,
	}
}

func httpStatusText(code int) string {
	switch code {
	case 400:
		return "Bad Request"
	case 401:
		return "Unauthorized"
	case 403:
		return "Forbidden"
	case 404:
		return "Not Found"
	case 422:
		return "Unprocessable Entity"
	case 500:
		return "Internal Server Error"
	case 502:
		return "Bad Gateway"
	case 503:
		return "Service Unavailable"
	case 504:
		return "Gateway Timeout"
	default:
		return fmt.Sprintf("HTTP %d", code)
	}
}

// FormatUserError renders an error for terminal output, preferring the
// typed messages over raw wrapping chains.
func FormatUserError(err error) string {
	if err == nil {
		return ""
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Error()
	}

	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr.Error()
	}

	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return fmt.Sprintf("Network error: %v. Please check your connection and try again.", netErr.Err)
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return apiErr.Error()
	}

	return err.Error()
}
