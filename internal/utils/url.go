// Copyright (C) 2026 NetAutomate
// SPDX-License-Identifier: Apache-2.0


package utils

import (
	"net/url"
	"strings"
)

// IsBaseURL reports whether text is a well-formed http or https base
// address usable as the API endpoint.
func IsBaseURL(text string) bool {
	if text == "" {
		return false
	}

	if !strings.HasPrefix(text, "http://") && !strings.HasPrefix(text, "https://") {
		return false
	}

	parsed, err := url.Parse(text)
	if err != nil {
		return false
	}

	return parsed.Host != ""
}
