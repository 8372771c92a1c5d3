// Package service provides business logic for the dashboard module.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/fireteam/teamfinder/internal/dashboard/model"
	"github.com/fireteam/teamfinder/internal/dashboard/repository"
)

// Service defines the interface for dashboard business logic operations.
type Service interface {
	// GetDashboard assembles the caller's dashboard in one response.
	GetDashboard(ctx context.Context, userID string) (*model.DashboardResponse, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new dashboard service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		logger: logger,
	}
}

// GetDashboard assembles the caller's dashboard in one response.
func (s *service) GetDashboard(ctx context.Context, userID string) (*model.DashboardResponse, error) {
	owned, err := s.repo.GetOwnedTeams(ctx, userID)
	if err != nil {
		return nil, err
	}

	joined, err := s.repo.GetJoinedTeams(ctx, userID)
	if err != nil {
		return nil, err
	}

	var pendingTotal int64
	for _, team := range owned {
		pendingTotal += team.PendingCount
	}

	return &model.DashboardResponse{
		Owned:  owned,
		Joined: joined,
		Summary: model.Summary{
			OwnedTeams:          len(owned),
			JoinedTeams:         len(joined),
			PendingApplications: pendingTotal,
		},
	}, nil
}
