// Copyright (C) 2026 NetAutomate
// SPDX-License-Identifier: Apache-2.0


package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/netautomate/netorca-cli/internal/domain"
)

// changeService implements the domain.ChangeService interface
type changeService struct {
	repo    domain.ChangeRepository
	updater domain.ChangeUpdater
	logger  *slog.Logger
}

// NewChangeService creates a new instance of ChangeService
func NewChangeService(repo domain.ChangeRepository, updater domain.ChangeUpdater, logger *slog.Logger) domain.ChangeService {
	return &changeService{
		repo:    repo,
		updater: updater,
		logger:  logger,
	}
}

// CompleteApproved marks every approved change of the service as
// completed, attaching the same deployed item to each update. Updates
// run one at a time, in the order the repository returned them; that
// order is whatever the server produced and carries no meaning here.
//
// On the first failed update the loop stops and the report assembled so
// far is returned together with the error. Already completed updates
// are not rolled back.
func (s *changeService) CompleteApproved(ctx context.Context, serviceName string, deployedItem map[string]any) (*domain.CompletionReport, error) {
	approved, err := s.repo.List(ctx, domain.StateApproved, serviceName)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved changes: %w", err)
	}

	report := &domain.CompletionReport{}

	for _, change := range approved {
		s.logger.Debug("completing change instance", "uuid", change.UUID, "service", serviceName)

		update := domain.ChangeUpdate{
			State:        domain.StateCompleted,
			DeployedItem: deployedItem,
		}
		if _, err := s.updater.Update(ctx, change.UUID, update); err != nil {
			report.Message = fmt.Sprintf("Completed %d of %d changes; update of %s failed", report.Count, len(approved), change.UUID)
			return report, err
		}
		report.Count++
	}

	report.Successful = true
	report.Message = fmt.Sprintf("Completed %d changes", report.Count)
	return report, nil
}
