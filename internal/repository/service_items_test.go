// Copyright (C) 2026 NetAutomate
// SPDX-License-Identifier: Apache-2.0


package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestListServiceItems(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != EndpointServiceItems {
			t.Errorf("expected path %s, got %s", EndpointServiceItems, r.URL.Path)
		}
		if got := r.URL.Query().Get("service_name"); got != "LoadBalancer" {
			t.Errorf("expected service_name query LoadBalancer, got %q", got)
		}
		if got := r.Header.Get("Authorization"); got != "Token "+testToken {
			t.Errorf("expected Token auth header, got %q", got)
		}

		_ = json.NewEncoder(w).Encode(map[string]any{
			"count": 2,
			"next":  nil,
			"results": []any{
				map[string]any{"name": "vip-1", "service": map[string]any{"name": "LoadBalancer"}},
				map[string]any{"name": "vip-2", "service": map[string]any{"name": "LoadBalancer"}},
			},
		})
	}))
	defer server.Close()

	repo := NewServiceItemRepository(server.Client(), server.URL, testToken, testLogger())
	items, err := repo.List(context.Background(), "LoadBalancer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Name != "vip-1" || items[0].Service.Name != "LoadBalancer" {
		t.Errorf("unexpected first item: %+v", items[0])
	}
}

func TestListServiceItemsZeroCount(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"count": 0})
	}))
	defer server.Close()

	repo := NewServiceItemRepository(server.Client(), server.URL, testToken, testLogger())
	items, err := repo.List(context.Background(), "Nothing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected empty result, got %d entries", len(items))
	}
}
