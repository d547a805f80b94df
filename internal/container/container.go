// Copyright (C) 2026 NetAutomate
// SPDX-License-Identifier: Apache-2.0


package container

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/netautomate/netorca-cli/internal/config"
	"github.com/netautomate/netorca-cli/internal/domain"
	"github.com/netautomate/netorca-cli/internal/errors"
	"github.com/netautomate/netorca-cli/internal/repository"
	"github.com/netautomate/netorca-cli/internal/services"
	"github.com/netautomate/netorca-cli/internal/utils"
)

// Container holds the dependencies of one invocation. The token is
// resolved exactly once when the container is built and reused for every
// call made during the invocation; it is never persisted or cached
// across invocations.
type Container struct {
	config  *config.Config
	logger  *slog.Logger
	changes domain.ChangeRepository
	updater domain.ChangeUpdater
	items   domain.ServiceItemRepository
	service domain.ChangeService
}

// New validates the configuration, resolves the credential to a token
// and wires the repositories and the completion workflow. Validation
// failures surface here, before any I/O; a username/password credential
// costs one authentication round trip per invocation.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	if !utils.IsBaseURL(cfg.APIURL) {
		return nil, &errors.ValidationError{
			Field:   "url",
			Value:   cfg.APIURL,
			Message: "not a valid base URL",
		}
	}

	cred, err := domain.NewCredential(cfg.APIKey, cfg.Username, cfg.Password)
	if err != nil {
		return nil, err
	}

	httpClient := &http.Client{
		Timeout: 30 * time.Second,
	}

	var token string
	switch c := cred.(type) {
	case domain.APIKey:
		token = string(c)
	case domain.UserPass:
		auth := repository.NewAuthenticator(httpClient, cfg.APIURL, logger)
		token, err = auth.Login(ctx, c.Username, c.Password)
		if err != nil {
			return nil, err
		}
	}

	changes := repository.NewChangeRepository(httpClient, cfg.APIURL, token, logger)
	updater := repository.NewChangeUpdater(httpClient, cfg.APIURL, token, logger)
	items := repository.NewServiceItemRepository(httpClient, cfg.APIURL, token, logger)
	service := services.NewChangeService(changes, updater, logger)

	return &Container{
		config:  cfg,
		logger:  logger,
		changes: changes,
		updater: updater,
		items:   items,
		service: service,
	}, nil
}

// Config returns the invocation configuration
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the invocation logger
func (c *Container) Logger() *slog.Logger {
	return c.logger
}

// ChangeRepository returns the change instance repository
func (c *Container) ChangeRepository() domain.ChangeRepository {
	return c.changes
}

// ChangeUpdater returns the change instance updater
func (c *Container) ChangeUpdater() domain.ChangeUpdater {
	return c.updater
}

// ServiceItemRepository returns the service item repository
func (c *Container) ServiceItemRepository() domain.ServiceItemRepository {
	return c.items
}

// ChangeService returns the batch completion workflow
func (c *Container) ChangeService() domain.ChangeService {
	return c.service
}
